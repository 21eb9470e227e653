package engine

import (
	"fmt"

	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// LockedThemeError is returned when switching to a theme whose reward has
// not been granted yet. It should be shown to the user.
type LockedThemeError struct {
	Theme    theme.ID
	RewardID string
}

func (e LockedThemeError) Error() string {
	return fmt.Sprintf("theme '%s' is locked (needs reward %s)", e.Theme, e.RewardID)
}

// UnknownQuestError is returned for a quest id outside the catalog.
type UnknownQuestError struct {
	ID string
}

func (e UnknownQuestError) Error() string {
	return fmt.Sprintf("unknown quest: %s", e.ID)
}
