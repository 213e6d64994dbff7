package model

import "net/url"

// ReportInput aggregates everything the report assembler needs. It is built
// once per run and handed over to the assembler.
type ReportInput struct {
	Passed      PathSet
	Failed      PathSet
	New         PathSet
	Deleted     PathSet
	Expected    PathSet
	Actual      PathSet
	Differences PathSet
	Details     map[Path]DiffDetail

	ActualDir   string
	ExpectedDir string
	DiffDir     string

	JSONPath   string
	ReportPath string // empty disables the document report
	JUnitPath  string // empty disables the JUnit report
	URLPrefix  *url.URL

	ExtendedErrors bool
	// FromJSON marks input re-read from a previously emitted JSON report;
	// directories are then passed through unresolved.
	FromJSON bool
}

// JSONReport is the machine-readable snapshot of a run.
type JSONReport struct {
	FailedItems   PathSet             `json:"failedItems"`
	NewItems      PathSet             `json:"newItems"`
	DeletedItems  PathSet             `json:"deletedItems"`
	PassedItems   PathSet             `json:"passedItems"`
	ExpectedItems PathSet             `json:"expectedItems"`
	ActualItems   PathSet             `json:"actualItems"`
	DiffItems     PathSet             `json:"diffItems"`
	ActualDir     string              `json:"actualDir"`
	ExpectedDir   string              `json:"expectedDir"`
	DiffDir       string              `json:"diffDir"`
	DiffDetails   map[Path]DiffDetail `json:"diffDetails,omitempty"`
}

// HasChanges reports whether the run found failed, new or deleted images.
func (r JSONReport) HasChanges() bool {
	return !r.FailedItems.Empty() || !r.NewItems.Empty() || !r.DeletedItems.Empty()
}
