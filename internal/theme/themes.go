package theme

// Built-in theme factories. Each returns a fresh Descriptor; the registry
// calls them once.

func neonGrid() Descriptor {
	accent := ParseColor("#00f0ff")
	hot := ParseColor("#ff2a6d")
	return Descriptor{
		ID:          NeonGrid,
		Name:        "Neon Grid",
		Description: "Cyan wireframe on deep navy. The stock look.",
		Accent:      accent,
		Secondary:   hot,
		Text:        ParseColor("#e0f7ff"),
		Muted:       ParseColor("#5c7a99"),
		Background:  Gradient{ParseColor("#05070f"), ParseColor("#0b1a33")},
		Card:        Gradient{ParseColor("#0d1b2a"), ParseColor("#1b263b")},
		Fonts:       Fonts{Title: "Orbitron-Bold", Body: "Rajdhani-Regular", Mono: "ShareTechMono-Regular"},
		Ambient:     Ambient{Scanlines: true},
		tag: func(p Priority) TagStyle {
			switch p {
			case PriorityLow:
				return TagStyle{Text: "LOW", Color: ParseColor("#5c7a99"), CornerRadius: 4}
			case PriorityHigh:
				return TagStyle{Text: "HIGH", Color: hot, CornerRadius: 4, Glow: true, GlowRadius: 4}
			case PriorityCritical:
				return TagStyle{Text: "CRIT", Color: hot, TextColor: colorPtr(ParseColor("#ffffff")), Background: colorPtr(hot), CornerRadius: 4, Glow: true, GlowRadius: 8}
			default:
				return TagStyle{Text: "MED", Color: accent, CornerRadius: 4}
			}
		},
	}
}

func synthwave() Descriptor {
	pink := ParseColor("#ff71ce")
	sun := ParseColor("#fffb96")
	return Descriptor{
		ID:          Synthwave,
		Name:        "Synthwave",
		Description: "Sunset magenta over a purple horizon.",
		Accent:      pink,
		Secondary:   ParseColor("#01cdfe"),
		Text:        ParseColor("#fdf0ff"),
		Muted:       ParseColor("#8a6fa8"),
		Background:  Gradient{ParseColor("#1a0633"), ParseColor("#4a0e4e"), ParseColor("#ff6c11")},
		Card:        Gradient{ParseColor("#2d0b45"), ParseColor("#3e1259")},
		Fonts:       Fonts{Title: "Monoton-Regular", Body: "Rajdhani-Medium", Mono: "VT323-Regular"},
		Ambient:     Ambient{Grain: true},
		tag: func(p Priority) TagStyle {
			switch p {
			case PriorityLow:
				return TagStyle{Text: "chill", Color: ParseColor("#b967ff"), CornerRadius: 10}
			case PriorityHigh:
				return TagStyle{Text: "hot", Color: pink, CornerRadius: 10, Glow: true, GlowRadius: 6}
			case PriorityCritical:
				return TagStyle{Text: "overdrive", Color: sun, Background: colorPtr(pink), CornerRadius: 10, Glow: true, GlowRadius: 10}
			default:
				return TagStyle{Text: "cruise", Color: ParseColor("#01cdfe"), CornerRadius: 10}
			}
		},
	}
}

func netrunner() Descriptor {
	green := ParseColor("#00ff41")
	return Descriptor{
		ID:          Netrunner,
		Name:        "Netrunner",
		Description: "Phosphor green terminal for deep dives.",
		Accent:      green,
		Secondary:   ParseColor("#008f11"),
		Text:        ParseColor("#c8ffc8"),
		Muted:       ParseColor("#3b5e3b"),
		Background:  Gradient{ParseColor("#000000"), ParseColor("#031a06")},
		Card:        Gradient{ParseColor("#020f04"), ParseColor("#06260b")},
		Fonts:       Fonts{Title: "ShareTechMono-Regular", Body: "ShareTechMono-Regular", Mono: "ShareTechMono-Regular"},
		Ambient:     Ambient{Scanlines: true, Rain: true},
		tag: func(p Priority) TagStyle {
			switch p {
			case PriorityLow:
				return TagStyle{Text: "idle", Color: ParseColor("#3b5e3b")}
			case PriorityHigh:
				return TagStyle{Text: "hot", Color: green, Glow: true, GlowRadius: 3}
			case PriorityCritical:
				return TagStyle{Text: "ICE", Color: green, TextColor: colorPtr(ParseColor("#000000")), Background: colorPtr(green), Glow: true, GlowRadius: 6}
			default:
				return TagStyle{Text: "queued", Color: ParseColor("#008f11")}
			}
		},
	}
}

func chromeNoir() Descriptor {
	chrome := ParseColor("#c0c5ce")
	red := ParseColor("#e63946")
	return Descriptor{
		ID:          ChromeNoir,
		Name:        "Chrome Noir",
		Description: "Rain-slick chrome and a single red light.",
		Accent:      chrome,
		Secondary:   red,
		Text:        ParseColor("#f1f1f1"),
		Muted:       ParseColor("#6b6f76"),
		Background:  Gradient{ParseColor("#0a0a0a"), ParseColor("#1f2226")},
		Card:        Gradient{ParseColor("#16181b"), ParseColor("#2a2d31")},
		Fonts:       Fonts{Title: "BebasNeue-Regular", Body: "IBMPlexSans-Regular", Mono: "IBMPlexMono-Regular"},
		Ambient:     Ambient{Rain: true, Grain: true},
		tag: func(p Priority) TagStyle {
			switch p {
			case PriorityLow:
				return TagStyle{Text: "low", Color: ParseColor("#6b6f76"), CornerRadius: 2}
			case PriorityHigh:
				return TagStyle{Text: "high", Color: red, CornerRadius: 2}
			case PriorityCritical:
				return TagStyle{Text: "critical", Color: red, TextColor: colorPtr(chrome), Background: colorPtr(red), CornerRadius: 2, Glow: true, GlowRadius: 5}
			default:
				return TagStyle{Text: "medium", Color: chrome, CornerRadius: 2}
			}
		},
	}
}

// glitch uses the plain tag set over a corrupted palette.
func glitch() Descriptor {
	accent := ParseColor("#f0f")
	return Descriptor{
		ID:          Glitch,
		Name:        "Glitch",
		Description: "Torn frames and misaligned channels.",
		Accent:      accent,
		Secondary:   ParseColor("#0ff"),
		Text:        ParseColor("#ffffff"),
		Muted:       ParseColor("#777777"),
		Background:  Gradient{ParseColor("#000"), ParseColor("#1a001a"), ParseColor("#001a1a")},
		Card:        Gradient{ParseColor("#111111"), ParseColor("#220022")},
		Fonts:       Fonts{Title: "VT323-Regular", Body: "VT323-Regular", Mono: "VT323-Regular"},
		Ambient:     Ambient{Scanlines: true, Glitch: 0.8},
		tag:         plainTag(accent),
	}
}
