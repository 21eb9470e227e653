package quest

import (
	"strings"

	"github.com/byten0kami/Neon-sub001/internal/theme"
)

const (
	FirstJackIn  = "first_jack_in"
	NightShift   = "night_shift"
	SystemGlitch = "system_glitch"
)

// Overlay effect names.
const (
	EffectGlitchBurst  = "glitch_burst"
	EffectNeonRain     = "neon_rain"
	EffectScanlineTear = "scanline_tear"
)

// SystemGlitchTaskCount is how many completed tasks unlock the glitch quest.
const SystemGlitchTaskCount = 10

// NightShiftHour is the end hour (local, 24h) that counts as a night shift.
const NightShiftHour = 22

func switchTheme(id theme.ID) func(Deps) {
	return func(d Deps) {
		if d.Themes != nil {
			d.Themes.SetTheme(id)
		}
	}
}

// Catalog returns the built-in quest definitions in listing order.
func Catalog() []Definition {
	return []Definition{
		{
			Quest: Quest{
				ID:          FirstJackIn,
				Title:       "First Jack-In",
				Description: "Finish onboarding, then close out any task.",
			},
			Effect:   EffectGlitchBurst,
			RewardID: theme.RewardFirstJackIn,
			Available: func(c Context) bool {
				return c.Onboarded
			},
			OnComplete: switchTheme(theme.Netrunner),
		},
		{
			Quest: Quest{
				ID:          NightShift,
				Title:       "Night Shift",
				Description: "Schedule something that runs past 22:00 and get a task done.",
			},
			Effect:   EffectNeonRain,
			RewardID: theme.RewardNightShift,
			Available: func(c Context) bool {
				return c.ScheduledCount > 0 && c.LatestEndHour >= NightShiftHour
			},
			OnComplete: switchTheme(theme.ChromeNoir),
		},
		{
			Quest: Quest{
				ID:          SystemGlitch,
				Title:       "System Glitch",
				Description: "Clear ten tasks, then one more to break the grid.",
			},
			Effect:   EffectScanlineTear,
			RewardID: theme.RewardSystemGlitch,
			Available: func(c Context) bool {
				return c.CompletedTasks >= SystemGlitchTaskCount
			},
			OnComplete: switchTheme(theme.Glitch),
		},
	}
}

// Lookup finds a built-in definition by id.
func Lookup(id string) (Definition, bool) {
	id = strings.TrimSpace(strings.ToLower(id))
	for _, d := range Catalog() {
		if d.Quest.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
