package domain

import (
	"context"

	"github.com/mouse-blink/goreg/internal/adapter"
	m "github.com/mouse-blink/goreg/internal/model"
	"github.com/mouse-blink/goreg/internal/trace"
)

// Discovery finds the images of both trees and splits them into sets.
type Discovery interface {
	Discover(ctx context.Context, expectedDir, actualDir string) (m.DetectedImages, error)
}

type discovery struct {
	fsAdapter adapter.ImageFSAdapter
}

// NewDiscovery constructs a Discovery backed by fsAdapter.
func NewDiscovery(fsAdapter adapter.ImageFSAdapter) Discovery {
	return &discovery{fsAdapter: fsAdapter}
}

// Discover lists both trees and computes deleted = expected − actual and
// new = actual − expected.
func (d *discovery) Discover(ctx context.Context, expectedDir, actualDir string) (m.DetectedImages, error) {
	ctx, span := trace.Start(ctx, "find_images", trace.WithTarget("goreg::discovery"))

	expected, err := d.collect(ctx, expectedDir)
	if err != nil {
		span.End(err)
		return m.DetectedImages{}, err
	}

	actual, err := d.collect(ctx, actualDir)
	if err != nil {
		span.End(err)
		return m.DetectedImages{}, err
	}

	detected := m.DetectedImages{
		Expected: expected,
		Actual:   actual,
		Deleted:  expected.Difference(actual),
		New:      actual.Difference(expected),
	}

	span.SetAttr("expected", expected.Len())
	span.SetAttr("actual", actual.Len())
	span.SetAttr("deleted", detected.Deleted.Len())
	span.SetAttr("new", detected.New.Len())
	span.End(nil)

	return detected, nil
}

func (d *discovery) collect(ctx context.Context, root string) (m.PathSet, error) {
	_, span := trace.Start(ctx, "list_images", trace.AtLevel(trace.LevelDebug), trace.WithAttr("root", root))

	images, err := d.fsAdapter.ListImages(root)
	if err != nil {
		span.End(err)
		return m.PathSet{}, err
	}

	span.SetAttr("count", len(images))
	span.End(nil)

	return m.NewPathSet(images...), nil
}
