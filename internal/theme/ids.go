package theme

import "strings"

// ID names one of the built-in themes.
type ID string

const (
	NeonGrid   ID = "neon_grid"
	Synthwave  ID = "synthwave"
	Netrunner  ID = "netrunner"
	ChromeNoir ID = "chrome_noir"
	Glitch     ID = "glitch"
)

// DefaultID is used when an id is missing or not registered.
const DefaultID ID = NeonGrid

// declaration order, also the listing order of All.
var idOrder = []ID{NeonGrid, Synthwave, Netrunner, ChromeNoir, Glitch}

// IDs returns every theme id in declaration order.
func IDs() []ID {
	out := make([]ID, len(idOrder))
	copy(out, idOrder)
	return out
}

func (id ID) IsValid() bool {
	switch id {
	case NeonGrid, Synthwave, Netrunner, ChromeNoir, Glitch:
		return true
	default:
		return false
	}
}

func (id ID) String() string { return string(id) }

// ParseID normalizes user input ("Chrome-Noir", " glitch ") to an ID.
// Unknown input returns DefaultID and false.
func ParseID(input string) (ID, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	id := ID(s)
	if !id.IsValid() {
		return DefaultID, false
	}
	return id, true
}
