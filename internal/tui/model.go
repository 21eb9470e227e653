package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/byten0kami/Neon-sub001/internal/engine"
	"github.com/byten0kami/Neon-sub001/internal/quest"
	"github.com/byten0kami/Neon-sub001/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snap     *engine.Snapshot
	selected int
	effect   string

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap *engine.Snapshot
	err  error
}

type taskDoneMsg struct {
	res engine.TaskResult
	err error
}

type questDoneMsg struct {
	id  string
	ok  bool
	err error
}

type themeMsg struct {
	name string
	err  error
}

type tickMsg time.Time

type timersMsg struct {
	n   int
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Jacked in.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.openCmd(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// openCmd fires app_opened before the first load.
func (m boardModel) openCmd() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.svc.Fire(m.ctx, quest.EventAppOpened); err != nil {
			return loadedMsg{err: err}
		}
		if _, err := m.svc.Refresh(m.ctx); err != nil {
			return loadedMsg{err: err}
		}
		return m.loadCmd()()
	}
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot(m.ctx)
		return loadedMsg{snap: snap, err: err}
	}
}

func (m boardModel) completeTaskCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx)
		return taskDoneMsg{res: res, err: err}
	}
}

func (m boardModel) completeQuestCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ok, err := m.svc.CompleteQuest(m.ctx, id)
		return questDoneMsg{id: id, ok: ok, err: err}
	}
}

func (m boardModel) cycleThemeCmd() tea.Cmd {
	return func() tea.Msg {
		d, err := m.svc.CycleTheme(m.ctx)
		return themeMsg{name: d.Name, err: err}
	}
}

func (m boardModel) finishTimersCmd() tea.Cmd {
	return func() tea.Msg {
		done, err := m.svc.FinishTimers(m.ctx)
		return timersMsg{n: len(done), err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = msg.snap
		ui.Use(msg.snap.Theme)
		if n := len(msg.snap.Effects); n > 0 {
			m.effect = msg.snap.Effects[n-1]
		}
		if m.selected >= len(m.snap.Quests) {
			m.selected = len(m.snap.Quests) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil
	case tickMsg:
		if m.snap == nil {
			return m, tick()
		}
		m.snap.Now = time.Time(msg)
		for _, t := range m.snap.Timers {
			if t.Finished(m.snap.Now) {
				return m, tea.Batch(m.finishTimersCmd(), tick())
			}
		}
		return m, tick()
	case timersMsg:
		if msg.err != nil {
			m.lastLog = "Timer check failed: " + msg.err.Error()
			return m, nil
		}
		if msg.n > 0 {
			m.lastLog = fmt.Sprintf("%s %d timer(s) finished.", ui.IconClock, msg.n)
		}
		return m, m.loadCmd()
	case taskDoneMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s Task #%d closed.", ui.IconDone, msg.res.CompletedTasks)
		if len(msg.res.Triggered) > 0 {
			m.lastLog += " Triggered: " + strings.Join(msg.res.Triggered, ", ")
		}
		return m, m.loadCmd()
	case questDoneMsg:
		switch {
		case msg.err != nil:
			m.lastLog = "Quest failed: " + msg.err.Error()
			return m, nil
		case !msg.ok:
			m.lastLog = fmt.Sprintf("%s is not triggered yet.", msg.id)
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s Quest %s complete.", ui.IconTrophy, msg.id)
		return m, m.loadCmd()
	case themeMsg:
		if msg.err != nil {
			var locked engine.LockedThemeError
			if errors.As(msg.err, &locked) {
				m.lastLog = ui.IconLock + " " + locked.Error()
				return m, nil
			}
			m.lastLog = "Theme switch failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = ui.IconPalette + " " + msg.name
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.snap != nil && m.selected < len(m.snap.Quests)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			m.lastLog = "Closing task…"
			return m, m.completeTaskCmd()
		case "enter":
			if m.snap == nil || m.selected >= len(m.snap.Quests) {
				return m, nil
			}
			return m, m.completeQuestCmd(m.snap.Quests[m.selected].ID)
		case "t":
			return m, m.cycleThemeCmd()
		case "x":
			m.effect = ""
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.snap == nil {
		return "NEON // booting…\n"
	}

	leftW := 28
	if m.width > 0 {
		if maxLeft := m.width / 2; maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	left := lipgloss.NewStyle().Width(leftW).Render(m.renderSidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.renderMain())
	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	s := m.snap
	who := "runner"
	if s.HasProfile {
		who = s.Profile.Label()
	}
	line := fmt.Sprintf("%s | %s | %s | tasks %d",
		ui.Banner("NEON // "+s.Theme.Name), who, s.Now.Format("15:04"), s.CompletedTasks)
	width := m.width
	if width <= 0 {
		width = 60
	}
	return line + "\n" + ui.Dim.Render(s.Theme.Ambient.Divider(width))
}

func (m boardModel) renderSidebar() string {
	lines := []string{ui.PanelTitle.Render("Themes")}
	for _, st := range m.snap.Themes {
		mark := "  "
		switch {
		case st.Active:
			mark = "▸ "
		case st.Locked:
			mark = ui.IconLock
		}
		lines = append(lines, mark+st.Theme.Name)
	}
	lines = append(lines, "")
	lines = append(lines, ui.PanelTitle.Render("Keys"))
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: task done")
	lines = append(lines, "- enter: claim quest")
	lines = append(lines, "- t: next theme")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	s := m.snap
	var out []string

	out = append(out, ui.PanelTitle.Render(ui.IconEvent+" Upcoming"))
	if len(s.Upcoming) == 0 {
		out = append(out, ui.Muted.Render("(nothing scheduled)"))
	}
	for _, e := range s.Upcoming {
		prefix := "  "
		if e.IsOngoing(s.Now) {
			prefix = ui.IconBolt
		}
		out = append(out, fmt.Sprintf("%s%s %s %s", prefix, ui.PriorityTag(e.Priority), e.TimeRangeLabel(), e.Title))
	}
	out = append(out, "")

	if len(s.Timers) > 0 {
		out = append(out, ui.PanelTitle.Render(ui.IconClock+" Timers"))
		for _, t := range s.Timers {
			ratio := t.Progress(s.Now)
			out = append(out, fmt.Sprintf("- %s %s %s", t.Label, progressBar(int(ratio*100), 100, 16), t.RemainingLabel(s.Now)))
		}
		out = append(out, "")
	}

	out = append(out, ui.PanelTitle.Render(ui.IconQuest+" Quests"))
	for i, q := range s.Quests {
		cursor := "  "
		row := fmt.Sprintf("%s %s %s", ui.PhaseIcon(q.Phase), q.Title, progressBar(int(q.Progress*100), 100, 10))
		if i == m.selected {
			cursor = "> "
			row = ui.SelectedRow.Render(row)
		}
		out = append(out, fmt.Sprintf("%s%s %s", cursor, row, ui.PhaseText(q.Phase)))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	out := "\n" + m.lastLog
	if m.effect != "" {
		out = ui.Key.Render(effectBanner(m.effect)) + "\n" + out
	}
	return out
}

func effectBanner(effect string) string {
	switch effect {
	case quest.EffectGlitchBurst:
		return "▓▒░ G L I T C H ░▒▓  (x to dismiss)"
	case quest.EffectNeonRain:
		return "│ ╎ ┆ neon rain ┆ ╎ │  (x to dismiss)"
	case quest.EffectScanlineTear:
		return "═══╡ scanline tear ╞═══  (x to dismiss)"
	default:
		return "** " + effect + " **  (x to dismiss)"
	}
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
