package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/goreg/internal/model"
)

func TestProgressModel_Update(t *testing.T) {
	model := newProgressModel(80)
	assert.Nil(t, model.Init())
	assert.Contains(t, model.View(), "Discovering images")

	updated, _ := model.Update(discoveryMsg{targets: 4, workers: 2, added: 1, deleted: 3})
	model = updated.(progressModel)

	updated, _ = model.Update(diffDoneMsg{path: "a.png", equal: true})
	model = updated.(progressModel)

	updated, _ = model.Update(diffDoneMsg{path: "dir/b.png", diffCount: 12})
	model = updated.(progressModel)

	assert.Equal(t, 2, model.completed)
	assert.Equal(t, 1, model.changed)
	assert.InDelta(t, 0.5, model.percent(), 1e-9)

	view := model.View()
	assert.Contains(t, view, "goreg visual regression")
	assert.Contains(t, view, "dir/b.png")

	updated, cmd := model.Update(finishedMsg{})
	model = updated.(progressModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.finished)
}

func TestProgressModel_NoTargets(t *testing.T) {
	model := newProgressModel(80)
	assert.Zero(t, model.percent())

	updated, _ := model.Update(finishedMsg{})
	assert.InDelta(t, 1.0, updated.(progressModel).percent(), 1e-9)
}

func TestProgressModel_WindowSizeAndQuitKey(t *testing.T) {
	model := newProgressModel(80)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(progressModel)
	assert.Equal(t, 120, model.width)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestProgressModel_CtrlCInterruptsRun(t *testing.T) {
	interrupted := 0

	model := newProgressModel(80)
	model.onInterrupt = func() { interrupted++ }

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
	assert.Zero(t, interrupted)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, interrupted)
}

func TestTUI_StartWiresInterrupt(t *testing.T) {
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ui := &TUI{output: &out, input: strings.NewReader("\x03")}
	require.NoError(t, ui.Start(WithCompareMode(), WithInterrupt(cancel)))
	defer ui.Close()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("ctrl+c on input did not cancel the run context")
	}
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "short", truncateToWidth("short", 10))
	assert.Equal(t, "", truncateToWidth("anything", 0))

	got := truncateToWidth("very/long/path/to/image.png", 10)
	assert.True(t, strings.HasPrefix(got, "…"))
	assert.True(t, strings.HasSuffix(got, "image.png"))
	assert.LessOrEqual(t, len([]rune(got)), 10)
}

func TestTUI_Lifecycle(t *testing.T) {
	var out bytes.Buffer

	ui := &TUI{output: &out}
	require.NoError(t, ui.Start(WithCompareMode()))
	require.Error(t, ui.Start(), "starting twice is rejected")

	ui.DisplayDiscovery(m.DetectedImages{
		Expected: m.NewPathSet("a.png"),
		Actual:   m.NewPathSet("a.png"),
	}, 1)
	ui.DisplayCompletedDiff("a.png", m.DiffOutcome{Equal: true})
	ui.Close()
	ui.Wait()
	ui.Close()
}

func TestTUI_RenderModeDoesNotStartProgram(t *testing.T) {
	var out bytes.Buffer

	ui := &TUI{output: &out}
	require.NoError(t, ui.Start(WithRenderMode()))

	ui.DisplayCompletedDiff("a.png", m.DiffOutcome{})
	ui.Close()
	ui.Wait()

	assert.Empty(t, out.String())
}

func TestTUI_DisplaySummary(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	require.NoError(t, ui.DisplaySummary(sampleReport(), m.ErrChangesDetected))

	text := out.String()
	for _, want := range []string{"change", "changed.png", "append", "added.png", "delete", "removed.png", "pass", "same.png", "Changed:", "Passed:"} {
		assert.Contains(t, text, want)
	}
}

func TestTUI_DisplaySummary_Error(t *testing.T) {
	var out bytes.Buffer

	boom := errors.New("boom")
	err := NewTUI(&out).DisplaySummary(m.JSONReport{}, boom)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, out.String(), "error: boom")
}

func TestTermWidth_NonFile(t *testing.T) {
	assert.Equal(t, defaultTermWidth, termWidth(&bytes.Buffer{}))
}
