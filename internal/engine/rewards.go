package engine

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/byten0kami/Neon-sub001/internal/storage"
)

// UnlockReward records a reward. Granting a held reward is a no-op that
// returns false.
func (s *Service) UnlockReward(ctx context.Context, id string) (bool, error) {
	return s.unlockReward(ctx, s.repos, id)
}

func (s *Service) unlockReward(ctx context.Context, r storage.Repos, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, errors.New("reward id is required")
	}
	added, err := r.Rewards.Grant(ctx, id, s.now())
	if err != nil {
		return false, err
	}
	if added {
		s.log.Info("reward granted", zap.String("reward", id))
	}
	return added, nil
}

func (s *Service) Rewards(ctx context.Context) ([]storage.Reward, error) {
	return s.repos.Rewards.ListAll(ctx)
}

func (s *Service) HasReward(ctx context.Context, id string) (bool, error) {
	return s.repos.Rewards.Has(ctx, id)
}
