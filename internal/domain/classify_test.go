package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/goreg/internal/model"
)

func u64(v uint64) *uint64   { return &v }
func f64(v float64) *float64 { return &v }

func TestIsPassed_NoThresholds(t *testing.T) {
	assert.True(t, IsPassed(10, 10, 0, nil, nil))
	assert.False(t, IsPassed(10, 10, 1, nil, nil))
}

func TestIsPassed_PixelThreshold(t *testing.T) {
	assert.True(t, IsPassed(100, 100, 10, u64(10), nil))
	assert.False(t, IsPassed(100, 100, 11, u64(10), nil))
}

func TestIsPassed_PixelThresholdWinsOverRate(t *testing.T) {
	assert.True(t, IsPassed(100, 100, 50, u64(50), f64(0)))
	assert.False(t, IsPassed(100, 100, 51, u64(50), f64(1)))
}

func TestIsPassed_RateThreshold(t *testing.T) {
	assert.True(t, IsPassed(100, 100, 100, nil, f64(0.01)))
	assert.False(t, IsPassed(100, 100, 101, nil, f64(0.01)))
}

func TestIsPassed_ZeroArea(t *testing.T) {
	assert.True(t, IsPassed(0, 0, 0, nil, f64(0.5)))
	assert.False(t, IsPassed(0, 10, 1, nil, f64(0.5)))
}

func TestIsPassed_LargeImageDoesNotOverflow(t *testing.T) {
	assert.True(t, IsPassed(1<<20, 1<<20, 1<<30, nil, f64(0.001)))
	assert.False(t, IsPassed(1<<20, 1<<20, 1<<31, nil, f64(0.001)))
}

func TestIsPassed_ZeroCountAlwaysPasses(t *testing.T) {
	pixels := []*uint64{nil, u64(0), u64(5)}
	rates := []*float64{nil, f64(0), f64(0.5)}

	for _, p := range pixels {
		for _, r := range rates {
			assert.True(t, IsPassed(10, 10, 0, p, r))
			assert.True(t, IsPassed(0, 0, 0, p, r))
		}
	}
}

func TestIsPassed_MonotonicInDiffCount(t *testing.T) {
	configs := []struct {
		pixel *uint64
		rate  *float64
	}{
		{nil, nil},
		{u64(7), nil},
		{nil, f64(0.05)},
		{u64(3), f64(0.5)},
	}

	for _, c := range configs {
		failedOnce := false

		for count := uint64(0); count <= 200; count++ {
			passed := IsPassed(20, 10, count, c.pixel, c.rate)
			if failedOnce {
				assert.False(t, passed, "count %d passed after a smaller count failed", count)
			}

			if !passed {
				failedOnce = true
			}
		}
	}
}

func TestClassify(t *testing.T) {
	compared := []m.ComparedImage{
		{Path: "a.png", Outcome: m.DiffOutcome{Equal: true}},
		{Path: "b.png", Outcome: m.DiffOutcome{DiffCount: 5, Width: 10, Height: 10, DiffImage: []byte("diff")}},
		{Path: "c.png", Outcome: m.DiffOutcome{DiffCount: 50, Width: 10, Height: 10, DiffImage: []byte("diff")}},
	}

	result := Classify(compared, m.Thresholds{Pixel: u64(5)})

	assert.Equal(t, []m.Path{"a.png", "b.png"}, result.Passed.Items())
	assert.Equal(t, []m.Path{"c.png"}, result.Failed.Items())
	assert.Equal(t, []m.Path{"c.png"}, result.Differences.Items())
	assert.Equal(t, m.DiffDetail{DiffCount: 50, Width: 10, Height: 10, DiffPercentage: 50}, result.Details["c.png"])
	assert.NotContains(t, result.Details, m.Path("b.png"))
}

func TestClassify_PartitionsTargets(t *testing.T) {
	compared := []m.ComparedImage{
		{Path: "x/1.png", Outcome: m.DiffOutcome{DiffCount: 1, Width: 1, Height: 1}},
		{Path: "x/2.png", Outcome: m.DiffOutcome{Equal: true}},
		{Path: "y.png", Outcome: m.DiffOutcome{DiffCount: 0, Width: 3, Height: 3}},
	}

	result := Classify(compared, m.Thresholds{})

	targets := m.NewPathSet("x/1.png", "x/2.png", "y.png")
	assert.Equal(t, targets.Items(), result.Passed.Union(result.Failed).Items())
	assert.True(t, result.Passed.Intersect(result.Failed).Empty())
	assert.True(t, result.Differences.Empty())
}
