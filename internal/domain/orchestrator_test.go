package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/goreg/internal/adapter/mocks"
	m "github.com/mouse-blink/goreg/internal/model"
	"github.com/mouse-blink/goreg/internal/trace"
)

func expectImage(fsAdapter *adaptermocks.MockImageFSAdapter, p m.Path) {
	fsAdapter.EXPECT().ReadFile(filepath.Join("actual", string(p))).Return([]byte("actual:"+p), nil)
	fsAdapter.EXPECT().ReadFile(filepath.Join("expected", string(p))).Return([]byte("expected:"+p), nil)
}

func sortCompared(compared []m.ComparedImage) {
	slices.SortFunc(compared, func(a, b m.ComparedImage) int {
		return strings.Compare(string(a.Path), string(b.Path))
	})
}

func TestOrchestrator_Compare(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	differ := adaptermocks.NewMockDiffer(t)
	opts := m.DiffOptions{Threshold: 0.1, IncludeAntiAlias: true}

	expectImage(fsAdapter, "a.png")
	expectImage(fsAdapter, "b.png")

	differ.EXPECT().Diff([]byte("actual:a.png"), []byte("expected:a.png"), opts).Return(m.DiffOutcome{Equal: true}, nil)
	differ.EXPECT().Diff([]byte("actual:b.png"), []byte("expected:b.png"), opts).
		Return(m.DiffOutcome{DiffCount: 3, Width: 2, Height: 2, DiffImage: []byte("img")}, nil)

	orch := NewOrchestrator(fsAdapter, differ)

	compared, err := orch.Compare(context.Background(), "actual", "expected", m.NewPathSet("b.png", "a.png"), 4, opts)
	require.NoError(t, err)
	require.Len(t, compared, 2)

	sortCompared(compared)
	assert.Equal(t, m.Path("a.png"), compared[0].Path)
	assert.True(t, compared[0].Outcome.Equal)
	assert.Equal(t, m.Path("b.png"), compared[1].Path)
	assert.Equal(t, uint64(3), compared[1].Outcome.DiffCount)
}

func TestOrchestrator_Compare_NoTargets(t *testing.T) {
	orch := NewOrchestrator(adaptermocks.NewMockImageFSAdapter(t), adaptermocks.NewMockDiffer(t))

	compared, err := orch.Compare(context.Background(), "actual", "expected", m.NewPathSet(), 4, m.DiffOptions{})
	require.NoError(t, err)
	assert.Empty(t, compared)
}

func TestOrchestrator_Compare_FailFast(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	differ := adaptermocks.NewMockDiffer(t)

	expectImage(fsAdapter, "a.png")
	expectImage(fsAdapter, "b.png")

	differ.EXPECT().Diff([]byte("actual:a.png"), mock.Anything, mock.Anything).Return(m.DiffOutcome{Equal: true}, nil)
	differ.EXPECT().Diff([]byte("actual:b.png"), mock.Anything, mock.Anything).Return(m.DiffOutcome{}, m.ErrDiff)

	// With a single worker c.png starts after b.png failed and never reads.
	orch := NewOrchestrator(fsAdapter, differ)

	compared, err := orch.Compare(context.Background(), "actual", "expected", m.NewPathSet("a.png", "b.png", "c.png"), 1, m.DiffOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrDiff)
	assert.Contains(t, err.Error(), "b.png")
	assert.Nil(t, compared)
}

func TestOrchestrator_Compare_ReadError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	differ := adaptermocks.NewMockDiffer(t)

	fsAdapter.EXPECT().ReadFile(filepath.Join("actual", "a.png")).Return(nil, fmt.Errorf("%w: gone", m.ErrFileIO))

	orch := NewOrchestrator(fsAdapter, differ)

	_, err := orch.Compare(context.Background(), "actual", "expected", m.NewPathSet("a.png"), 2, m.DiffOptions{})
	assert.ErrorIs(t, err, m.ErrFileIO)
}

func TestOrchestrator_Compare_CanceledContext(t *testing.T) {
	orch := NewOrchestrator(adaptermocks.NewMockImageFSAdapter(t), adaptermocks.NewMockDiffer(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := orch.Compare(ctx, "actual", "expected", m.NewPathSet("a.png", "b.png"), 2, m.DiffOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrchestrator_Compare_ReportsProgress(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	differ := adaptermocks.NewMockDiffer(t)

	targets := m.NewPathSet("a.png", "b.png", "c.png")
	for _, p := range targets.Items() {
		expectImage(fsAdapter, p)
	}

	differ.EXPECT().Diff(mock.Anything, mock.Anything, mock.Anything).Return(m.DiffOutcome{Equal: true}, nil)

	var (
		mu   sync.Mutex
		seen []m.Path
	)

	orch := NewOrchestrator(fsAdapter, differ, WithProgress(func(p m.Path, _ m.DiffOutcome) {
		mu.Lock()
		defer mu.Unlock()

		seen = append(seen, p)
	}))

	_, err := orch.Compare(context.Background(), "actual", "expected", targets, 3, m.DiffOptions{})
	require.NoError(t, err)

	slices.Sort(seen)
	assert.Equal(t, targets.Items(), seen)
}

func TestOrchestrator_CompareAll_CollectsEveryOutcome(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	differ := adaptermocks.NewMockDiffer(t)

	for _, p := range []m.Path{"a.png", "b.png", "c.png"} {
		expectImage(fsAdapter, p)
	}

	differ.EXPECT().Diff([]byte("actual:a.png"), mock.Anything, mock.Anything).Return(m.DiffOutcome{Equal: true}, nil)
	differ.EXPECT().Diff([]byte("actual:b.png"), mock.Anything, mock.Anything).Return(m.DiffOutcome{}, m.ErrDiff)
	differ.EXPECT().Diff([]byte("actual:c.png"), mock.Anything, mock.Anything).Return(m.DiffOutcome{DiffCount: 1}, nil)

	orch := NewOrchestrator(fsAdapter, differ)

	compared, err := orch.CompareAll(context.Background(), "actual", "expected", m.NewPathSet("a.png", "b.png", "c.png"), 1, m.DiffOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrDiff)
	require.Len(t, compared, 2)

	sortCompared(compared)
	assert.Equal(t, m.Path("a.png"), compared[0].Path)
	assert.Equal(t, m.Path("c.png"), compared[1].Path)
}

type countingDiffer struct {
	running atomic.Int32
	peak    atomic.Int32
	calls   atomic.Int32
}

func (d *countingDiffer) Diff(_, _ []byte, _ m.DiffOptions) (m.DiffOutcome, error) {
	n := d.running.Add(1)
	defer d.running.Add(-1)

	for {
		peak := d.peak.Load()
		if n <= peak || d.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	d.calls.Add(1)
	time.Sleep(5 * time.Millisecond)

	return m.DiffOutcome{Equal: true}, nil
}

func TestOrchestrator_Compare_RespectsConcurrency(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	fsAdapter.EXPECT().ReadFile(mock.Anything).Return([]byte("x"), nil)

	targets := m.NewPathSet()
	for i := range 12 {
		targets.Add(m.Path(fmt.Sprintf("%02d.png", i)))
	}

	differ := &countingDiffer{}
	orch := NewOrchestrator(fsAdapter, differ)

	compared, err := orch.Compare(context.Background(), "actual", "expected", targets, 3, m.DiffOptions{})
	require.NoError(t, err)

	assert.Len(t, compared, 12)
	assert.Equal(t, int32(12), differ.calls.Load())
	assert.LessOrEqual(t, differ.peak.Load(), int32(3))
}

func TestOrchestrator_Compare_RecordsSpans(t *testing.T) {
	collector := trace.New()
	ctx := trace.WithCollector(context.Background(), collector)

	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	differ := adaptermocks.NewMockDiffer(t)

	expectImage(fsAdapter, "a.png")
	differ.EXPECT().Diff(mock.Anything, mock.Anything, mock.Anything).Return(m.DiffOutcome{Equal: true}, nil)

	_, err := NewOrchestrator(fsAdapter, differ).Compare(ctx, "actual", "expected", m.NewPathSet("a.png"), 1, m.DiffOptions{})
	require.NoError(t, err)

	spans := collector.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, []string{"compare_images", "diff_image"}, collector.SpanNames())

	for _, s := range spans {
		if s.Name == "diff_image" {
			require.NotNil(t, s.ParentSpanID)
			assert.Equal(t, "a.png", s.Attributes["path"])
		}
	}
}

func TestPoolSize(t *testing.T) {
	assert.Equal(t, 1, poolSize(0))
	assert.Equal(t, 1, poolSize(-3))
	assert.Equal(t, 4, poolSize(DefaultConcurrency))
}
