package controller

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/goreg/internal/model"
)

// SimpleUI implements UI using cobra Command's output writers.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options...).mode
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; SimpleUI renders synchronously.
func (s *SimpleUI) Wait() {}

// DisplayDiscovery prints how many images are about to be compared.
func (s *SimpleUI) DisplayDiscovery(detected m.DetectedImages, workers int) {
	s.printf("Comparing %d image(s) with %d worker(s): %d new, %d deleted\n",
		detected.Targets().Len(), workers, detected.New.Len(), detected.Deleted.Len())
}

// DisplayCompletedDiff is silent; results are listed by DisplaySummary.
func (s *SimpleUI) DisplayCompletedDiff(_ m.Path, _ m.DiffOutcome) {}

// DisplaySummary prints every image with its status and the totals.
func (s *SimpleUI) DisplaySummary(report m.JSONReport, err error) error {
	if err != nil && !errors.Is(err, m.ErrChangesDetected) {
		s.printf("error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"", "Status", "Image"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range summaryRows(report) {
		table.Append([]string{row.mark, row.status, row.path})
	}

	c := countsOf(report)
	table.SetFooter([]string{
		"",
		fmt.Sprintf("%d changed", c.failed),
		fmt.Sprintf("%d new, %d deleted, %d passed", c.added, c.deleted, c.passed),
	})

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	switch {
	case c.failed > 0:
		s.printf("✘ %d file(s) changed.\n", c.failed)
	case c.added > 0 || c.deleted > 0:
		s.printf("✚ %d file(s) appended, %d file(s) deleted.\n", c.added, c.deleted)
	default:
		s.printf("✔ all %d file(s) passed.\n", c.passed)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
