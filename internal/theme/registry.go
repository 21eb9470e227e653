package theme

// declared holds every built-in theme in listing order.
var declared = []Descriptor{
	neonGrid(),
	synthwave(),
	netrunner(),
	chromeNoir(),
	glitch(),
}

var registry = func() map[ID]Descriptor {
	m := make(map[ID]Descriptor, len(declared))
	for _, d := range declared {
		m[d.ID] = d
	}
	return m
}()

// For returns the theme registered under id, or the default theme.
func For(id ID) Descriptor {
	if d, ok := registry[id]; ok {
		return d
	}
	return registry[DefaultID]
}

// All returns every theme in declaration order.
func All() []Descriptor {
	out := make([]Descriptor, len(declared))
	copy(out, declared)
	return out
}

func Default() Descriptor {
	return registry[DefaultID]
}
