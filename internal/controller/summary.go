package controller

import (
	m "github.com/mouse-blink/goreg/internal/model"
)

// Status labels printed next to every image.
const (
	statusChange = "change"
	statusAppend = "append"
	statusDelete = "delete"
	statusPass   = "pass"
)

type summaryRow struct {
	mark   string
	status string
	path   string
}

// summaryRows lists failed, new, deleted and passed images in that order.
func summaryRows(report m.JSONReport) []summaryRow {
	rows := make([]summaryRow, 0, report.FailedItems.Len()+report.NewItems.Len()+report.DeletedItems.Len()+report.PassedItems.Len())

	groups := []struct {
		items  m.PathSet
		mark   string
		status string
	}{
		{report.FailedItems, "✘", statusChange},
		{report.NewItems, "✚", statusAppend},
		{report.DeletedItems, "✘", statusDelete},
		{report.PassedItems, "✔", statusPass},
	}

	for _, g := range groups {
		for _, p := range g.items.Items() {
			rows = append(rows, summaryRow{mark: g.mark, status: g.status, path: string(p)})
		}
	}

	return rows
}

type summaryCounts struct {
	failed, added, deleted, passed int
}

func countsOf(report m.JSONReport) summaryCounts {
	return summaryCounts{
		failed:  report.FailedItems.Len(),
		added:   report.NewItems.Len(),
		deleted: report.DeletedItems.Len(),
		passed:  report.PassedItems.Len(),
	}
}
