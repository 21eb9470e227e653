package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the terminal styles derived from a descriptor.
type Styles struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style
}

// Styles builds lipgloss styles for the descriptor.
func (d Descriptor) Styles() Styles {
	border := lipgloss.NormalBorder()
	if d.Tag(PriorityMedium).CornerRadius >= 4 {
		border = lipgloss.RoundedBorder()
	}
	selected := lipgloss.NewStyle().Bold(true).Foreground(d.Text.Lipgloss()).Background(d.Secondary.Lipgloss())
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(d.Accent.Lipgloss()),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(d.Secondary.Lipgloss()),
		Text:     lipgloss.NewStyle().Foreground(d.Text.Lipgloss()),
		Muted:    lipgloss.NewStyle().Foreground(d.Muted.Lipgloss()),
		Accent:   lipgloss.NewStyle().Foreground(d.Accent.Lipgloss()),
		Panel:    lipgloss.NewStyle().BorderStyle(border).BorderForeground(d.Accent.Lipgloss()).Padding(0, 1),
		Selected: selected,
	}
}

// Style converts the tag to a lipgloss style. Glow maps to bold+underline
// since terminals have no blur.
func (t TagStyle) Style() lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(t.Foreground().Lipgloss())
	if t.Background != nil {
		st = st.Background(t.Background.Lipgloss())
	}
	if t.Glow {
		st = st.Bold(true)
		if t.GlowRadius >= 6 {
			st = st.Underline(true)
		}
	}
	return st
}

// Label is the tag text wrapped in brackets matching its corner radius.
func (t TagStyle) Label() string {
	open, closing := "[", "]"
	if t.CornerRadius >= 8 {
		open, closing = "(", ")"
	}
	return open + t.Text + closing
}

func (t TagStyle) Render() string {
	return t.Style().Render(t.Label())
}
