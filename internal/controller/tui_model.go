package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 40

// progressModel renders a progress bar while images are compared.
type progressModel struct {
	progressBar progress.Model
	width       int
	targets     int
	workers     int
	added       int
	deleted     int
	completed   int
	changed     int
	lastPath    string
	discovered  bool
	finished    bool
	onInterrupt func()
}

func newProgressModel(width int) progressModel {
	return progressModel{
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(progressWidth),
			progress.WithoutPercentage(),
		),
		width: width,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return nil
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if pm.onInterrupt != nil {
				pm.onInterrupt()
			}

			return pm, tea.Quit
		}

	case discoveryMsg:
		pm.discovered = true
		pm.targets = msg.targets
		pm.workers = msg.workers
		pm.added = msg.added
		pm.deleted = msg.deleted

	case diffDoneMsg:
		pm.completed++
		pm.lastPath = msg.path

		if !msg.equal && msg.diffCount > 0 {
			pm.changed++
		}

	case finishedMsg:
		pm.finished = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.targets == 0 {
		if pm.finished {
			return 1
		}

		return 0
	}

	return float64(pm.completed) / float64(pm.targets)
}

func (pm progressModel) View() string {
	if !pm.discovered {
		return "Discovering images…\n"
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("goreg visual regression")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Compared: %s / %s  •  Differing: %s  •  New: %s  •  Deleted: %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", pm.completed)),
		accentStyle.Render(fmt.Sprintf("%d", pm.targets)),
		accentStyle.Render(fmt.Sprintf("%d", pm.changed)),
		accentStyle.Render(fmt.Sprintf("%d", pm.added)),
		accentStyle.Render(fmt.Sprintf("%d", pm.deleted)),
		accentStyle.Render(fmt.Sprintf("%d", pm.workers)),
	))

	bar := lipgloss.NewStyle().Padding(0, 2).Render(pm.progressBar.ViewAs(pm.percent()))

	current := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Padding(0, 2).
		Render(truncateToWidth(pm.lastPath, pm.width-4))

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, bar, current) + "\n"
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[1:]
	}

	return "…" + string(runes)
}
