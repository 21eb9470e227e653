package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a normalized lowercase "#rrggbb" value.
type Color string

// FallbackColor replaces any malformed hex input.
const FallbackColor Color = "#ff00ff"

// ParseColor accepts "#rgb" and "#rrggbb", with or without the leading '#'.
// Anything else yields FallbackColor.
func ParseColor(hex string) Color {
	s := strings.TrimSpace(hex)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return FallbackColor
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return FallbackColor
		}
	}
	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return FallbackColor
	}
	return Color(c.Clamped().Hex())
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (c Color) String() string { return string(c) }

// Lipgloss adapts the color for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(string(c.normalized()))
}

func (c Color) normalized() Color {
	if c == "" {
		return FallbackColor
	}
	return ParseColor(string(c))
}

func (c Color) toColorful() colorful.Color {
	cc, err := colorful.Hex(string(c.normalized()))
	if err != nil {
		// normalized always yields a valid hex string
		cc, _ = colorful.Hex(string(FallbackColor))
	}
	return cc
}

// Gradient is an ordered list of color stops.
type Gradient []Color

// Steps samples n colors along the gradient, blending in Lab space.
// The first and last samples are exactly the first and last stops.
func (g Gradient) Steps(n int) []Color {
	if n <= 0 || len(g) == 0 {
		return nil
	}
	out := make([]Color, n)
	if len(g) == 1 || n == 1 {
		for i := range out {
			out[i] = g[0].normalized()
		}
		return out
	}

	segments := len(g) - 1
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			out[i] = g[0].normalized()
			continue
		case n - 1:
			out[i] = g[segments].normalized()
			continue
		}
		pos := float64(i) / float64(n-1) * float64(segments)
		idx := int(pos)
		if idx >= segments {
			idx = segments - 1
		}
		a := g[idx].toColorful()
		b := g[idx+1].toColorful()
		out[i] = Color(a.BlendLab(b, pos-float64(idx)).Clamped().Hex())
	}
	return out
}

// Render paints text one rune per gradient step.
func (g Gradient) Render(text string) string {
	runes := []rune(text)
	if len(runes) == 0 || len(g) == 0 {
		return text
	}
	steps := g.Steps(len(runes))
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Foreground(steps[i].Lipgloss()).Render(string(r)))
	}
	return b.String()
}
