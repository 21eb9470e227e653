package theme

import (
	"fmt"
	"strings"
)

// Priority is the urgency level a tag is styled for.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// Priorities lists every level, lowest first.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority maps user input to a Priority, defaulting to medium.
func ParsePriority(input string) Priority {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low", "l", "1":
		return PriorityLow
	case "high", "h", "3":
		return PriorityHigh
	case "critical", "crit", "c", "urgent", "4":
		return PriorityCritical
	default:
		return PriorityMedium
	}
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	*p = ParsePriority(string(b))
	return nil
}

// TagStyle describes how a priority tag looks under a theme.
type TagStyle struct {
	Text string
	// Color is the base tag color; TextColor and Background override it for
	// the label and the fill when set.
	Color        Color
	TextColor    *Color
	Background   *Color
	CornerRadius float64
	Glow         bool
	GlowRadius   float64
}

// Foreground is the color the label is drawn in.
func (t TagStyle) Foreground() Color {
	if t.TextColor != nil {
		return *t.TextColor
	}
	return t.Color
}

// Fonts holds font identifiers only; loading them is up to the renderer.
type Fonts struct {
	Title string
	Body  string
	Mono  string
}

// Ambient holds the background effect settings of a theme.
type Ambient struct {
	Scanlines bool
	Grain     bool
	Rain      bool
	// Glitch is an intensity in [0,1].
	Glitch float64
}

// Divider draws a horizontal rule that hints at the ambient effect.
func (a Ambient) Divider(width int) string {
	if width <= 0 {
		return ""
	}
	unit := "─"
	switch {
	case a.Glitch >= 0.5:
		unit = "▚"
	case a.Rain:
		unit = "╎"
	case a.Scanlines:
		unit = "═"
	case a.Grain:
		unit = "┄"
	}
	return strings.Repeat(unit, width)
}

// Descriptor is the immutable visual contract of one theme.
type Descriptor struct {
	ID          ID
	Name        string
	Description string

	Accent     Color
	Secondary  Color
	Text       Color
	Muted      Color
	Background Gradient
	Card       Gradient

	Fonts   Fonts
	Ambient Ambient

	tag func(Priority) TagStyle
}

// Tag returns the tag style for a priority level.
func (d Descriptor) Tag(p Priority) TagStyle {
	if d.tag == nil {
		return plainTag(d.Accent)(p)
	}
	return d.tag(p)
}

// plainTag is the tag function used by themes without their own.
func plainTag(accent Color) func(Priority) TagStyle {
	return func(p Priority) TagStyle {
		st := TagStyle{Text: strings.ToUpper(p.String()), Color: accent, CornerRadius: 4}
		if p == PriorityCritical {
			st.Glow = true
			st.GlowRadius = 6
		}
		return st
	}
}

func colorPtr(c Color) *Color { return &c }
