package domain

import (
	m "github.com/mouse-blink/goreg/internal/model"
)

// IsPassed decides whether an image with diffCount differing pixels passes.
// A pixel threshold wins over a rate threshold; with neither set only an
// exact match passes.
func IsPassed(width, height uint32, diffCount uint64, thresholdPixel *uint64, thresholdRate *float64) bool {
	switch {
	case thresholdPixel != nil:
		return diffCount <= *thresholdPixel
	case thresholdRate != nil:
		if diffCount == 0 {
			return true
		}

		pixels := uint64(width) * uint64(height)
		if pixels == 0 {
			return false
		}

		return float64(diffCount)/float64(pixels) <= *thresholdRate
	default:
		return diffCount == 0
	}
}

// Classify splits compared targets into passed and failed sets. Every
// failed image with a diff image is also recorded in Differences.
func Classify(compared []m.ComparedImage, thresholds m.Thresholds) m.Classification {
	result := m.Classification{
		Passed:      m.NewPathSet(),
		Failed:      m.NewPathSet(),
		Differences: m.NewPathSet(),
		Details:     make(map[m.Path]m.DiffDetail),
	}

	for _, c := range compared {
		out := c.Outcome
		if out.Equal || IsPassed(out.Width, out.Height, out.DiffCount, thresholds.Pixel, thresholds.Rate) {
			result.Passed.Add(c.Path)
			continue
		}

		result.Failed.Add(c.Path)
		result.Details[c.Path] = diffDetail(out)

		if len(out.DiffImage) > 0 {
			result.Differences.Add(c.Path)
		}
	}

	return result
}

func diffDetail(out m.DiffOutcome) m.DiffDetail {
	detail := m.DiffDetail{
		DiffCount: out.DiffCount,
		Width:     out.Width,
		Height:    out.Height,
	}

	if pixels := uint64(out.Width) * uint64(out.Height); pixels > 0 {
		detail.DiffPercentage = float64(out.DiffCount) / float64(pixels) * 100
	}

	return detail
}
