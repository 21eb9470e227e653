package theme

// Reward ids that gate themes. Quests grant them.
const (
	RewardFirstJackIn  = "quest.first_jack_in"
	RewardNightShift   = "quest.night_shift"
	RewardSystemGlitch = "quest.system_glitch"
)

// unlockTable maps a gated theme to its reward id. Themes missing from the
// table are unlocked by default.
var unlockTable = map[ID]string{
	Netrunner:  RewardFirstJackIn,
	ChromeNoir: RewardNightShift,
	Glitch:     RewardSystemGlitch,
}

// RequiresUnlock reports whether id is gated behind a reward.
func RequiresUnlock(id ID) bool {
	_, ok := unlockTable[id]
	return ok
}

// RewardID returns the reward that unlocks id, if any.
func RewardID(id ID) (string, bool) {
	r, ok := unlockTable[id]
	return r, ok
}

// Unlocks returns a copy of the unlock table.
func Unlocks() map[ID]string {
	out := make(map[ID]string, len(unlockTable))
	for k, v := range unlockTable {
		out[k] = v
	}
	return out
}

// Available reports whether id can be used given a granted-reward predicate.
func Available(id ID, granted func(rewardID string) bool) bool {
	r, ok := unlockTable[id]
	if !ok {
		return true
	}
	return granted != nil && granted(r)
}
