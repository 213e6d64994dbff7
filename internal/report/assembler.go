// Package report turns the classified comparison results into the JSON
// report, the HTML document and the JUnit XML report. It only builds bytes;
// persisting them is the caller's job.
package report

import (
	"fmt"

	m "github.com/mouse-blink/goreg/internal/model"
)

// Reports bundles the artifacts built from one ReportInput. HTML and JUnit
// are nil when the corresponding output path was not configured.
type Reports struct {
	JSON  m.JSONReport
	HTML  []byte
	JUnit []byte
}

// Assemble builds every configured report from input.
func Assemble(input m.ReportInput) (Reports, error) {
	jsonReport, err := buildJSON(input)
	if err != nil {
		return Reports{}, err
	}

	reports := Reports{JSON: jsonReport}

	if input.ReportPath != "" {
		doc, err := newDocument(input)
		if err != nil {
			return Reports{}, err
		}

		if reports.HTML, err = renderDocument(doc); err != nil {
			return Reports{}, err
		}
	}

	if input.JUnitPath != "" {
		if reports.JUnit, err = renderJUnit(input); err != nil {
			return Reports{}, err
		}
	}

	return reports, nil
}

func buildJSON(input m.ReportInput) (m.JSONReport, error) {
	report := m.JSONReport{
		FailedItems:   input.Failed.Clone(),
		NewItems:      input.New.Clone(),
		DeletedItems:  input.Deleted.Clone(),
		PassedItems:   input.Passed.Clone(),
		ExpectedItems: input.Expected.Clone(),
		ActualItems:   input.Actual.Clone(),
		DiffItems:     input.Differences.Clone(),
	}

	if len(input.Details) > 0 {
		report.DiffDetails = make(map[m.Path]m.DiffDetail, len(input.Details))
		for p, d := range input.Details {
			report.DiffDetails[p] = d
		}
	}

	if input.FromJSON {
		report.ActualDir = input.ActualDir
		report.ExpectedDir = input.ExpectedDir
		report.DiffDir = input.DiffDir

		return report, nil
	}

	var err error

	dirs := []struct {
		dst *string
		src string
	}{
		{&report.ActualDir, input.ActualDir},
		{&report.ExpectedDir, input.ExpectedDir},
		{&report.DiffDir, input.DiffDir},
	}

	for _, d := range dirs {
		if *d.dst, err = ResolveDir(input.JSONPath, d.src, input.URLPrefix); err != nil {
			return m.JSONReport{}, err
		}
	}

	return report, nil
}

// resolveForDocument resolves dir relative to the document unless the input
// was re-read from JSON, where directories are already final.
func resolveForDocument(input m.ReportInput, dir string) (string, error) {
	if input.FromJSON {
		return dir, nil
	}

	resolved, err := ResolveDir(input.ReportPath, dir, nil)
	if err != nil {
		return "", fmt.Errorf("document: %w", err)
	}

	return resolved, nil
}
