package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/goreg/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return cmd, &out
}

func sampleReport() m.JSONReport {
	return m.JSONReport{
		FailedItems:  m.NewPathSet("changed.png"),
		NewItems:     m.NewPathSet("added.png"),
		DeletedItems: m.NewPathSet("removed.png"),
		PassedItems:  m.NewPathSet("same.png", "other.png"),
	}
}

func TestSimpleUI_DisplayDiscovery(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)
	require.NoError(t, ui.Start())

	ui.DisplayDiscovery(m.DetectedImages{
		Expected: m.NewPathSet("a.png", "b.png"),
		Actual:   m.NewPathSet("a.png", "c.png"),
		New:      m.NewPathSet("c.png"),
		Deleted:  m.NewPathSet("b.png"),
	}, 4)

	assert.Equal(t, "Comparing 1 image(s) with 4 worker(s): 1 new, 1 deleted\n", out.String())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplaySummary(sampleReport(), m.ErrChangesDetected))

	text := out.String()
	for _, want := range []string{"changed.png", "added.png", "removed.png", "same.png", "other.png", "✘ 1 file(s) changed."} {
		assert.Contains(t, text, want)
	}

	assert.Less(t, strings.Index(text, "changed.png"), strings.Index(text, "added.png"))
	assert.Less(t, strings.Index(text, "removed.png"), strings.Index(text, "other.png"))
}

func TestSimpleUI_DisplaySummary_AllPassed(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplaySummary(m.JSONReport{PassedItems: m.NewPathSet("a.png")}, nil))
	assert.Contains(t, out.String(), "✔ all 1 file(s) passed.")
}

func TestSimpleUI_DisplaySummary_OnlyNew(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplaySummary(m.JSONReport{NewItems: m.NewPathSet("a.png")}, m.ErrChangesDetected))
	assert.Contains(t, out.String(), "✚ 1 file(s) appended, 0 file(s) deleted.")
}

func TestSimpleUI_DisplaySummary_Error(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	boom := errors.New("boom")
	err := ui.DisplaySummary(m.JSONReport{}, boom)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, "error: boom\n", out.String())
}

func TestSimpleUI_LifecycleIsNoop(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.Start(WithRenderMode()))
	assert.Equal(t, ModeRender, ui.mode)

	ui.DisplayCompletedDiff("a.png", m.DiffOutcome{Equal: true})
	ui.Close()
	ui.Wait()

	assert.Empty(t, out.String())
}
