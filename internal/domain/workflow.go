package domain

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/goreg/internal/adapter"
	m "github.com/mouse-blink/goreg/internal/model"
	"github.com/mouse-blink/goreg/internal/report"
	"github.com/mouse-blink/goreg/internal/trace"
)

// RunArgs configures one comparison run.
type RunArgs struct {
	ActualDir   string
	ExpectedDir string
	DiffDir     string

	JSONPath   string
	ReportPath string
	JUnitPath  string
	URLPrefix  *url.URL

	MatchingThreshold float64
	Thresholds        m.Thresholds
	Concurrency       int
	EnableAntialias   bool

	Update         bool
	ExtendedErrors bool
	IgnoreChange   bool
}

// RenderArgs configures re-rendering the document and JUnit reports from
// an existing JSON report.
type RenderArgs struct {
	FromJSON       string
	ReportPath     string
	JUnitPath      string
	ExtendedErrors bool
}

// Observer is notified while a run progresses. OnCompared is called from
// the comparison pool and must be safe for concurrent use.
type Observer interface {
	OnDiscovered(detected m.DetectedImages, workers int)
	OnCompared(path m.Path, outcome m.DiffOutcome)
}

// Workflow runs the comparison pipeline end to end.
type Workflow interface {
	// Run discovers, compares and classifies images, writes diff images and
	// reports, and optionally promotes the actual images to expected. It
	// returns ErrChangesDetected with the report when changes are found
	// and neither IgnoreChange nor Update is set.
	Run(ctx context.Context, args RunArgs) (m.JSONReport, error)
	// Render rebuilds the document and JUnit reports from a JSON report.
	Render(ctx context.Context, args RenderArgs) (m.JSONReport, error)
}

type workflow struct {
	fsAdapter adapter.ImageFSAdapter
	store     adapter.ReportStore
	differ    adapter.Differ
	observer  Observer
	log       *slog.Logger

	discovery Discovery
	orch      Orchestrator
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithObserver registers o for progress notifications.
func WithObserver(o Observer) WorkflowOption {
	return func(w *workflow) {
		w.observer = o
	}
}

// WithLogger sets the logger used for pipeline events.
func WithLogger(l *slog.Logger) WorkflowOption {
	return func(w *workflow) {
		w.log = l
	}
}

// WithOrchestrator replaces the default orchestrator.
func WithOrchestrator(o Orchestrator) WorkflowOption {
	return func(w *workflow) {
		w.orch = o
	}
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.ImageFSAdapter, store adapter.ReportStore, differ adapter.Differ, opts ...WorkflowOption) Workflow {
	w := &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		differ:    differ,
		log:       slog.Default(),
		discovery: NewDiscovery(fsAdapter),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.orch == nil {
		var orchOpts []OrchestratorOption
		if w.observer != nil {
			orchOpts = append(orchOpts, WithProgress(w.observer.OnCompared))
		}

		w.orch = NewOrchestrator(fsAdapter, differ, orchOpts...)
	}

	return w
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (m.JSONReport, error) {
	ctx, span := trace.Start(ctx, "run", trace.AtLevel(trace.LevelInfo), trace.WithTarget("goreg::workflow"))

	result, err := w.run(ctx, args)
	span.End(err)

	return result, err
}

func (w *workflow) run(ctx context.Context, args RunArgs) (m.JSONReport, error) {
	detected, err := w.discovery.Discover(ctx, args.ExpectedDir, args.ActualDir)
	if err != nil {
		return m.JSONReport{}, err
	}

	targets := detected.Targets()
	workers := poolSize(args.Concurrency)

	w.log.InfoContext(ctx, "images discovered",
		"expected", detected.Expected.Len(),
		"actual", detected.Actual.Len(),
		"new", detected.New.Len(),
		"deleted", detected.Deleted.Len(),
		"targets", targets.Len(),
	)

	if w.observer != nil {
		w.observer.OnDiscovered(detected, workers)
	}

	opts := m.DiffOptions{
		Threshold:        args.MatchingThreshold,
		IncludeAntiAlias: !args.EnableAntialias,
	}

	compared, err := w.orch.Compare(ctx, args.ActualDir, args.ExpectedDir, targets, workers, opts)
	if err != nil {
		w.log.ErrorContext(ctx, "comparison failed", "error", err)
		return m.JSONReport{}, err
	}

	classification := Classify(compared, args.Thresholds)

	w.log.InfoContext(ctx, "images classified",
		"passed", classification.Passed.Len(),
		"failed", classification.Failed.Len(),
	)

	if err := w.writeDiffImages(ctx, args.DiffDir, compared, classification); err != nil {
		return m.JSONReport{}, err
	}

	input := m.ReportInput{
		Passed:         classification.Passed,
		Failed:         classification.Failed,
		New:            detected.New,
		Deleted:        detected.Deleted,
		Expected:       detected.Expected,
		Actual:         detected.Actual,
		Differences:    classification.Differences,
		Details:        classification.Details,
		ActualDir:      args.ActualDir,
		ExpectedDir:    args.ExpectedDir,
		DiffDir:        args.DiffDir,
		JSONPath:       args.JSONPath,
		ReportPath:     args.ReportPath,
		JUnitPath:      args.JUnitPath,
		URLPrefix:      args.URLPrefix,
		ExtendedErrors: args.ExtendedErrors,
	}

	result, err := w.writeReports(ctx, input)
	if err != nil {
		return m.JSONReport{}, err
	}

	if args.Update {
		if err := w.updateExpected(ctx, args, detected); err != nil {
			return result, err
		}

		return result, nil
	}

	if result.HasChanges() && !args.IgnoreChange {
		return result, m.ErrChangesDetected
	}

	return result, nil
}

func (w *workflow) Render(ctx context.Context, args RenderArgs) (m.JSONReport, error) {
	ctx, span := trace.Start(ctx, "render_from_json", trace.AtLevel(trace.LevelInfo), trace.WithTarget("goreg::workflow"), trace.WithAttr("json", args.FromJSON))

	loaded, err := w.store.LoadJSON(args.FromJSON)
	if err != nil {
		span.End(err)
		return m.JSONReport{}, err
	}

	input := m.ReportInput{
		Passed:         loaded.PassedItems,
		Failed:         loaded.FailedItems,
		New:            loaded.NewItems,
		Deleted:        loaded.DeletedItems,
		Expected:       loaded.ExpectedItems,
		Actual:         loaded.ActualItems,
		Differences:    loaded.DiffItems,
		Details:        loaded.DiffDetails,
		ActualDir:      loaded.ActualDir,
		ExpectedDir:    loaded.ExpectedDir,
		DiffDir:        loaded.DiffDir,
		JSONPath:       args.FromJSON,
		ReportPath:     args.ReportPath,
		JUnitPath:      args.JUnitPath,
		ExtendedErrors: args.ExtendedErrors,
		FromJSON:       true,
	}

	result, err := w.writeReports(ctx, input)
	span.End(err)

	return result, err
}

// writeDiffImages stores the diff image of every failed target under
// diffDir, replacing the image extension with the diff image extension.
func (w *workflow) writeDiffImages(ctx context.Context, diffDir string, compared []m.ComparedImage, classification m.Classification) error {
	ctx, span := trace.Start(ctx, "write_diff_images", trace.WithTarget("goreg::workflow"))

	if err := w.fsAdapter.MkdirAll(diffDir); err != nil {
		span.End(err)
		return err
	}

	written := 0

	for _, c := range compared {
		if !classification.Differences.Has(c.Path) {
			continue
		}

		dst := filepath.Join(diffDir, filepath.FromSlash(DiffImagePath(c.Path)))
		if err := w.fsAdapter.WriteFile(dst, c.Outcome.DiffImage); err != nil {
			span.End(err)
			return err
		}

		w.log.DebugContext(ctx, "diff image written", "path", dst)

		written++
	}

	span.SetAttr("written", written)
	span.End(nil)

	return nil
}

func (w *workflow) writeReports(ctx context.Context, input m.ReportInput) (m.JSONReport, error) {
	ctx, span := trace.Start(ctx, "write_reports", trace.WithTarget("goreg::report"))

	reports, err := report.Assemble(input)
	if err != nil {
		span.End(err)
		return m.JSONReport{}, err
	}

	if !input.FromJSON {
		if err := w.store.SaveJSON(input.JSONPath, reports.JSON); err != nil {
			span.End(err)
			return m.JSONReport{}, err
		}
	}

	artifacts := []struct {
		path    string
		content []byte
	}{
		{input.ReportPath, reports.HTML},
		{input.JUnitPath, reports.JUnit},
	}

	for _, a := range artifacts {
		if a.content == nil {
			continue
		}

		if err := w.store.SaveArtifact(a.path, a.content); err != nil {
			span.End(err)
			return m.JSONReport{}, err
		}

		w.log.InfoContext(ctx, "report written", "path", a.path)
	}

	span.End(nil)

	return reports.JSON, nil
}

// updateExpected removes the discovered expected images and copies every
// actual image into the expected tree.
func (w *workflow) updateExpected(ctx context.Context, args RunArgs, detected m.DetectedImages) error {
	ctx, span := trace.Start(ctx, "update_expected", trace.WithTarget("goreg::workflow"))

	for _, p := range detected.Expected.Items() {
		if err := w.fsAdapter.RemoveFile(filepath.Join(args.ExpectedDir, filepath.FromSlash(string(p)))); err != nil {
			span.End(err)
			return err
		}
	}

	for _, p := range detected.Actual.Items() {
		src := filepath.Join(args.ActualDir, filepath.FromSlash(string(p)))
		dst := filepath.Join(args.ExpectedDir, filepath.FromSlash(string(p)))

		if err := w.fsAdapter.CopyFile(src, dst); err != nil {
			span.End(err)
			return fmt.Errorf("update expected images: %w", err)
		}
	}

	w.log.InfoContext(ctx, "expected images updated", "count", detected.Actual.Len())
	span.End(nil)

	return nil
}

// DiffImagePath returns the slash separated path of the diff image written
// for target.
func DiffImagePath(target m.Path) string {
	p := string(target)
	return strings.TrimSuffix(p, path.Ext(p)) + "." + m.DiffImageExtension
}
