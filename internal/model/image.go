// Package model defines the data structures shared by the comparison pipeline.
package model

// SupportedExtensions lists the image extensions (lower case, without dot)
// picked up during discovery.
var SupportedExtensions = []string{"tiff", "jpeg", "jpg", "gif", "png", "bmp", "webp"}

// DiffImageExtension is the extension every diff image is written with.
const DiffImageExtension = "webp"

// DetectedImages holds the four path sets computed by discovery.
type DetectedImages struct {
	Expected PathSet
	Actual   PathSet
	Deleted  PathSet // Expected − Actual
	New      PathSet // Actual − Expected
}

// Targets returns the paths present in both trees.
func (d DetectedImages) Targets() PathSet {
	return d.Expected.Intersect(d.Actual)
}

// DiffOptions configures the pixel comparison primitive.
type DiffOptions struct {
	Threshold        float64
	IncludeAntiAlias bool
}

// DiffOutcome is the result of comparing one target. Equal outcomes carry
// no count and no image.
type DiffOutcome struct {
	Equal     bool
	DiffCount uint64
	Width     uint32
	Height    uint32
	DiffImage []byte
}

// ComparedImage pairs a target path with its comparison outcome.
type ComparedImage struct {
	Path    Path
	Outcome DiffOutcome
}

// Thresholds holds the optional tolerances used by classification.
type Thresholds struct {
	Pixel *uint64
	Rate  *float64
}

// DiffDetail describes the pixel difference measured for one image.
type DiffDetail struct {
	DiffCount      uint64  `json:"diffCount"`
	Width          uint32  `json:"width"`
	Height         uint32  `json:"height"`
	DiffPercentage float64 `json:"diffPercentage"`
}

// Classification is the pass/fail split of all compared targets.
type Classification struct {
	Passed      PathSet
	Failed      PathSet
	Differences PathSet // diff images written, keyed by target path
	Details     map[Path]DiffDetail
}
