package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/goreg/internal/adapter"
	m "github.com/mouse-blink/goreg/internal/model"
	"github.com/mouse-blink/goreg/internal/trace"
)

// DefaultConcurrency is the pool size used when none is configured.
const DefaultConcurrency = 4

// ProgressFunc receives every finished comparison. It is called from the
// pool's goroutines and must be safe for concurrent use.
type ProgressFunc func(path m.Path, outcome m.DiffOutcome)

// Orchestrator compares every target image of the actual tree against its
// expected counterpart on a bounded pool created per call.
type Orchestrator interface {
	// Compare aborts on the first failure and discards partial outcomes.
	Compare(ctx context.Context, actualDir, expectedDir string, targets m.PathSet, concurrency int, opts m.DiffOptions) ([]m.ComparedImage, error)
	// CompareAll runs every target and returns the successful outcomes
	// together with the joined per-target errors.
	CompareAll(ctx context.Context, actualDir, expectedDir string, targets m.PathSet, concurrency int, opts m.DiffOptions) ([]m.ComparedImage, error)
}

type orchestrator struct {
	fsAdapter adapter.ImageFSAdapter
	differ    adapter.Differ
	progress  ProgressFunc
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*orchestrator)

// WithProgress registers fn to observe completed comparisons.
func WithProgress(fn ProgressFunc) OrchestratorOption {
	return func(o *orchestrator) {
		o.progress = fn
	}
}

// NewOrchestrator constructs an Orchestrator reading images through
// fsAdapter and comparing them with differ.
func NewOrchestrator(fsAdapter adapter.ImageFSAdapter, differ adapter.Differ, opts ...OrchestratorOption) Orchestrator {
	o := &orchestrator{
		fsAdapter: fsAdapter,
		differ:    differ,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *orchestrator) Compare(ctx context.Context, actualDir, expectedDir string, targets m.PathSet, concurrency int, opts m.DiffOptions) ([]m.ComparedImage, error) {
	ctx, span := trace.Start(ctx, "compare_images", trace.WithTarget("goreg::orchestrator"), trace.WithAttr("targets", targets.Len()))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(poolSize(concurrency))

	var (
		mu       sync.Mutex
		compared = make([]m.ComparedImage, 0, targets.Len())
	)

	for _, target := range targets.Items() {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			outcome, err := o.compareOne(groupCtx, actualDir, expectedDir, target, opts)
			if err != nil {
				return err
			}

			mu.Lock()
			compared = append(compared, m.ComparedImage{Path: target, Outcome: outcome})
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		span.End(err)
		return nil, err
	}

	span.End(nil)

	return compared, nil
}

func (o *orchestrator) CompareAll(ctx context.Context, actualDir, expectedDir string, targets m.PathSet, concurrency int, opts m.DiffOptions) ([]m.ComparedImage, error) {
	ctx, span := trace.Start(ctx, "compare_images", trace.WithTarget("goreg::orchestrator"), trace.WithAttr("targets", targets.Len()))

	var group errgroup.Group
	group.SetLimit(poolSize(concurrency))

	var (
		mu       sync.Mutex
		compared = make([]m.ComparedImage, 0, targets.Len())
		errs     []error
	)

	for _, target := range targets.Items() {
		group.Go(func() error {
			outcome, err := o.compareOne(ctx, actualDir, expectedDir, target, opts)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = append(errs, err)
				return nil
			}

			compared = append(compared, m.ComparedImage{Path: target, Outcome: outcome})

			return nil
		})
	}

	_ = group.Wait()

	err := errors.Join(errs...)
	span.SetAttr("failures", len(errs))
	span.End(err)

	return compared, err
}

func (o *orchestrator) compareOne(ctx context.Context, actualDir, expectedDir string, target m.Path, opts m.DiffOptions) (m.DiffOutcome, error) {
	_, span := trace.Start(ctx, "diff_image", trace.AtLevel(trace.LevelDebug), trace.WithTarget("goreg::orchestrator"), trace.WithAttr("path", target))

	actual, err := o.fsAdapter.ReadFile(filepath.Join(actualDir, filepath.FromSlash(string(target))))
	if err != nil {
		span.End(err)
		return m.DiffOutcome{}, err
	}

	expected, err := o.fsAdapter.ReadFile(filepath.Join(expectedDir, filepath.FromSlash(string(target))))
	if err != nil {
		span.End(err)
		return m.DiffOutcome{}, err
	}

	outcome, err := o.differ.Diff(actual, expected, opts)
	if err != nil {
		err = fmt.Errorf("%s: %w", target, err)
		span.End(err)

		return m.DiffOutcome{}, err
	}

	span.SetAttr("equal", outcome.Equal)
	span.SetAttr("diffCount", outcome.DiffCount)
	span.End(nil)

	if o.progress != nil {
		o.progress(target, outcome)
	}

	return outcome, nil
}

func poolSize(concurrency int) int {
	if concurrency < 1 {
		return 1
	}

	return concurrency
}
