package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "tighten.dev/pkg/tighten/internal/model"
)

// recentLimit is how many finished iterations the view keeps.
const recentLimit = 8

var statusColors = map[m.IterationStatus]lipgloss.Color{
	m.StatusPass:  lipgloss.Color("2"), // Green
	m.StatusFail:  lipgloss.Color("3"), // Yellow
	m.StatusError: lipgloss.Color("1"), // Red
}

var (
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// campaignModel is the Bubble Tea model shown while a campaign runs.
type campaignModel struct {
	width       int
	spinner     spinner.Model
	progressBar progress.Model
	info        CampaignInfo
	current     int
	batchSize   int
	counts      map[m.IterationStatus]int
	committed   int
	recent      []m.Iteration
	lastOutput  string
	stopping    bool
	onQuit      func()
}

func newCampaignModel(onQuit func()) campaignModel {
	return campaignModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(accentStyle),
		),
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
		counts: make(map[m.IterationStatus]int),
		onQuit: onQuit,
	}
}

func (cm campaignModel) Init() tea.Cmd {
	return cm.spinner.Tick
}

func (cm campaignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.width = msg.Width

	case tea.KeyMsg:
		return cm.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd

		cm.spinner, cmd = cm.spinner.Update(msg)

		return cm, cmd

	case campaignInfoMsg:
		cm.info = msg.info

	case iterationStartMsg:
		cm.current = msg.number
		cm.batchSize = msg.size
		cm.lastOutput = ""

	case iterationMsg:
		cm.counts[msg.iteration.Status]++
		if msg.iteration.Status == m.StatusPass {
			cm.committed += len(msg.iteration.Batch)
		}

		cm.recent = append(cm.recent, msg.iteration)
		if len(cm.recent) > recentLimit {
			cm.recent = cm.recent[len(cm.recent)-recentLimit:]
		}

	case outputLineMsg:
		if line := strings.TrimSpace(msg.line); line != "" {
			cm.lastOutput = line
		}
	}

	return cm, nil
}

func (cm campaignModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyCtrlC && msg.String() != "q" {
		return cm, nil
	}

	if cm.onQuit == nil {
		return cm, tea.Quit
	}

	if !cm.stopping {
		cm.stopping = true
		cm.onQuit()
	}

	return cm, nil
}

func (cm campaignModel) View() string {
	sections := []string{
		titleStyle.Render("tighten: narrowing visibility in " + string(cm.info.Root)),
		summaryStyle.Render(cm.renderSummary()),
	}

	if cm.info.MaxIterations > 0 {
		done := float64(cm.finished()) / float64(cm.info.MaxIterations)
		sections = append(sections, lipgloss.NewStyle().Padding(0, 2).Render(cm.progressBar.ViewAs(done)))
	}

	sections = append(sections, cm.renderCurrent(), cm.renderRecent(), cm.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (cm campaignModel) finished() int {
	total := 0
	for _, count := range cm.counts {
		total += count
	}

	return total
}

func (cm campaignModel) renderSummary() string {
	parts := []string{fmt.Sprintf("Sources: %s", accentStyle.Render(fmt.Sprintf("%d", cm.info.Sources)))}

	for _, status := range []m.IterationStatus{m.StatusPass, m.StatusFail, m.StatusError} {
		style := lipgloss.NewStyle().Foreground(statusColors[status]).Bold(true)
		parts = append(parts, fmt.Sprintf("%s: %d", style.Render(string(status)), cm.counts[status]))
	}

	parts = append(parts, fmt.Sprintf("Committed: %s", accentStyle.Render(fmt.Sprintf("%d", cm.committed))))

	return strings.Join(parts, "  •  ")
}

func (cm campaignModel) renderCurrent() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0)

	if cm.width > 4 {
		box = box.Width(cm.width - 4)
	}

	if cm.current == 0 {
		return box.Render(cm.spinner.View() + " starting")
	}

	line := fmt.Sprintf("%s iteration %d: validating %d mutation(s)", cm.spinner.View(), cm.current, cm.batchSize)
	if cm.lastOutput != "" {
		line += "\n" + faintStyle.Render(truncate(cm.lastOutput, cm.width-8))
	}

	return box.Render(line)
}

func (cm campaignModel) renderRecent() string {
	lines := make([]string, 0, len(cm.recent))

	for _, it := range cm.recent {
		style := lipgloss.NewStyle().Foreground(statusColors[it.Status]).Bold(true).Width(6)
		lines = append(lines, fmt.Sprintf("  %s #%d  %d mutation(s)  %s",
			style.Render(string(it.Status)), it.Number, len(it.Batch), faintStyle.Render(it.Duration.Round(time.Millisecond).String())))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (cm campaignModel) renderFooter() string {
	footer := "Press q to stop after the current step"
	if cm.stopping {
		footer = "Stopping…"
	}

	return faintStyle.Padding(1, 0, 0, 2).Render(footer)
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}

	runes := []rune(s)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}

	return string(runes) + "…"
}

// colorizeDiff styles added and removed lines of a unified diff.
func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = faintStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}
