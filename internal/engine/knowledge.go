package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/byten0kami/Neon-sub001/internal/knowledge"
	"github.com/byten0kami/Neon-sub001/internal/storage"
)

// Knowledge loads the stored facts into a read-only snapshot. Use AddFact
// and DeactivateFact to change what is stored.
func (s *Service) Knowledge(ctx context.Context) (*knowledge.Base, error) {
	facts, err := s.repos.Facts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return knowledge.NewBase(facts), nil
}

func (s *Service) Facts(ctx context.Context, activeOnly bool) ([]knowledge.Fact, error) {
	kb, err := s.Knowledge(ctx)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		return kb.Active(), nil
	}
	return kb.Facts(), nil
}

func (s *Service) AddFact(ctx context.Context, category, content, note string) (knowledge.Fact, error) {
	if strings.TrimSpace(content) == "" {
		return knowledge.Fact{}, errors.New("fact content is required")
	}
	if strings.TrimSpace(category) == "" {
		category = "general"
	}
	var f knowledge.Fact
	err := s.withTx(ctx, func(r storage.Repos) error {
		facts, err := r.Facts.ListAll(ctx)
		if err != nil {
			return err
		}
		kb := s.observedBase(facts)
		f = kb.Add(knowledge.Fact{
			Category: category,
			Content:  strings.TrimSpace(content),
			AINote:   strings.TrimSpace(note),
		})
		return r.Facts.Insert(ctx, f)
	})
	return f, err
}

// DeactivateFact hides a fact from the assistant. Unknown or already
// inactive facts are an error.
func (s *Service) DeactivateFact(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	return s.withTx(ctx, func(r storage.Repos) error {
		facts, err := r.Facts.ListAll(ctx)
		if err != nil {
			return err
		}
		kb := s.observedBase(facts)
		if !kb.DeactivateFact(id) {
			return fmt.Errorf("no active fact %s", id)
		}
		return r.Facts.SetActive(ctx, id, false)
	})
}

// observedBase wraps facts in a Base that logs the active count after each
// change.
func (s *Service) observedBase(facts []knowledge.Fact) *knowledge.Base {
	kb := knowledge.NewBase(facts)
	kb.Observer = func(all []knowledge.Fact) {
		active := 0
		for _, f := range all {
			if f.IsActive {
				active++
			}
		}
		s.log.Debug("knowledge changed", zap.Int("facts", len(all)), zap.Int("active", active))
	}
	return kb
}
