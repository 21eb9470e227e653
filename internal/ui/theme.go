package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/byten0kami/Neon-sub001/internal/quest"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// Shared CLI + TUI styles. They follow the active theme: call Use after
// the theme is known.

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLock    = "🔒"
	IconClock   = "⏱️"
	IconEvent   = "📅"
	IconBrain   = "🧠"
	IconPalette = "🎨"
)

var (
	cGood = lipgloss.Color("42")  // green
	cWarn = lipgloss.Color("214") // orange
	cBad  = lipgloss.Color("196") // red
)

var (
	Title = lipgloss.NewStyle().Bold(true)
	H2    = lipgloss.NewStyle().Bold(true)
	Muted = lipgloss.NewStyle()
	Key   = lipgloss.NewStyle().Bold(true)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Dim   = lipgloss.NewStyle()

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true)
	SelectedRow = lipgloss.NewStyle().Bold(true)

	active = theme.Default()
)

func init() {
	Use(theme.Default())
}

// Use restyles the shared styles from a theme descriptor.
func Use(d theme.Descriptor) {
	st := d.Styles()
	active = d
	Title = st.Title
	H2 = st.Heading
	Muted = st.Muted
	Dim = st.Muted.Faint(true)
	Key = st.Accent.Bold(true)
	Panel = st.Panel
	PanelTitle = st.Heading
	SelectedRow = st.Selected
}

// Active is the descriptor the styles were last built from.
func Active() theme.Descriptor { return active }

// ApplyColorProfile picks the lipgloss color profile. NO_COLOR or noColor
// force plain output; otherwise termenv's detection is used, upgraded when
// COLORTERM advertises truecolor.
func ApplyColorProfile(noColor bool) {
	if noColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if profile != termenv.Ascii && (strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit")) {
		profile = termenv.TrueColor
	}
	lipgloss.SetColorProfile(profile)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

// Banner renders a title through the theme's card gradient.
func Banner(title string) string {
	if len(active.Card) < 2 {
		return Title.Render(title)
	}
	return lipgloss.NewStyle().Bold(true).Render(active.Card.Render(title))
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PhaseText colors a quest phase name.
func PhaseText(p quest.Phase) string {
	switch p {
	case quest.PhaseCompleted:
		return Good.Render(p.String())
	case quest.PhaseTriggered:
		return Key.Render(p.String())
	case quest.PhaseAvailable:
		return Warn.Render(p.String())
	default:
		return Muted.Render(p.String())
	}
}

func PhaseIcon(p quest.Phase) string {
	switch p {
	case quest.PhaseCompleted:
		return IconTrophy
	case quest.PhaseTriggered:
		return IconBolt
	case quest.PhaseAvailable:
		return IconQuest
	default:
		return IconLock
	}
}

// PriorityTag renders the active theme's tag for a priority.
func PriorityTag(p theme.Priority) string {
	return active.Tag(p).Render()
}
