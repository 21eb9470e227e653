// Package knowledge holds the facts the assistant has learned about the user.
package knowledge

import (
	"strings"

	"github.com/google/uuid"
)

// Fact is one remembered piece of information.
type Fact struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Content  string `json:"content"`
	AINote   string `json:"aiNote,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Base is an ordered, in-memory fact list. Observer, when set, runs after
// every mutation so views can re-render.
type Base struct {
	facts    []Fact
	Observer func([]Fact)
}

func NewBase(facts []Fact) *Base {
	b := &Base{facts: make([]Fact, len(facts))}
	copy(b.facts, facts)
	return b
}

// Facts returns a copy of every fact in insertion order.
func (b *Base) Facts() []Fact {
	out := make([]Fact, len(b.facts))
	copy(out, b.facts)
	return out
}

func (b *Base) Active() []Fact {
	var out []Fact
	for _, f := range b.facts {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out
}

// ByCategory returns active facts in a category, case-insensitively.
func (b *Base) ByCategory(category string) []Fact {
	c := strings.TrimSpace(strings.ToLower(category))
	var out []Fact
	for _, f := range b.facts {
		if f.IsActive && strings.ToLower(f.Category) == c {
			out = append(out, f)
		}
	}
	return out
}

// Add appends a fact as active, assigning an id when it has none.
func (b *Base) Add(f Fact) Fact {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.Category = strings.TrimSpace(strings.ToLower(f.Category))
	f.IsActive = true
	b.facts = append(b.facts, f)
	b.notify()
	return f
}

// DeactivateFact marks a fact inactive. It returns false when the id is
// unknown or the fact is already inactive.
func (b *Base) DeactivateFact(id string) bool {
	for i := range b.facts {
		if b.facts[i].ID != id {
			continue
		}
		if !b.facts[i].IsActive {
			return false
		}
		b.facts[i].IsActive = false
		b.notify()
		return true
	}
	return false
}

func (b *Base) notify() {
	if b.Observer != nil {
		b.Observer(b.Facts())
	}
}
