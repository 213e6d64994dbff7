package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/goreg/internal/adapter/mocks"
	m "github.com/mouse-blink/goreg/internal/model"
	"github.com/mouse-blink/goreg/internal/trace"
)

func TestDiscovery_Discover(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	fsAdapter.EXPECT().ListImages("expected").Return([]m.Path{"b.png", "a.png", "d/e.png"}, nil)
	fsAdapter.EXPECT().ListImages("actual").Return([]m.Path{"a.png", "c.png", "d/e.png"}, nil)

	detected, err := NewDiscovery(fsAdapter).Discover(context.Background(), "expected", "actual")
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"a.png", "b.png", "d/e.png"}, detected.Expected.Items())
	assert.Equal(t, []m.Path{"a.png", "c.png", "d/e.png"}, detected.Actual.Items())
	assert.Equal(t, []m.Path{"c.png"}, detected.New.Items())
	assert.Equal(t, []m.Path{"b.png"}, detected.Deleted.Items())
	assert.Equal(t, []m.Path{"a.png", "d/e.png"}, detected.Targets().Items())
	assert.True(t, detected.New.Intersect(detected.Deleted).Empty())
}

func TestDiscovery_EmptyTrees(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	fsAdapter.EXPECT().ListImages("expected").Return(nil, nil)
	fsAdapter.EXPECT().ListImages("actual").Return(nil, nil)

	detected, err := NewDiscovery(fsAdapter).Discover(context.Background(), "expected", "actual")
	require.NoError(t, err)

	assert.True(t, detected.Expected.Empty())
	assert.True(t, detected.Targets().Empty())
}

func TestDiscovery_ListError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	fsAdapter.EXPECT().ListImages("expected").Return(nil, m.ErrFileIO)

	_, err := NewDiscovery(fsAdapter).Discover(context.Background(), "expected", "actual")
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrFileIO))
}

func TestDiscovery_RecordsSpans(t *testing.T) {
	collector := trace.New()
	ctx := trace.WithCollector(context.Background(), collector)

	fsAdapter := adaptermocks.NewMockImageFSAdapter(t)
	fsAdapter.EXPECT().ListImages("expected").Return([]m.Path{"a.png"}, nil)
	fsAdapter.EXPECT().ListImages("actual").Return([]m.Path{"a.png"}, nil)

	_, err := NewDiscovery(fsAdapter).Discover(ctx, "expected", "actual")
	require.NoError(t, err)

	assert.Equal(t, []string{"find_images", "list_images"}, collector.SpanNames())
	assert.Len(t, collector.Spans(), 3)
	assert.Zero(t, collector.ActiveCount())
}
