package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/byten0kami/Neon-sub001/internal/storage"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// ThemeStatus is a theme as the picker shows it.
type ThemeStatus struct {
	Theme    theme.Descriptor
	Locked   bool
	RewardID string
	Active   bool
}

// ActiveTheme returns the stored theme. A stored id that is unknown or no
// longer unlocked resolves to the default.
func (s *Service) ActiveTheme(ctx context.Context) (theme.Descriptor, error) {
	return s.activeTheme(ctx, s.repos)
}

func (s *Service) activeTheme(ctx context.Context, r storage.Repos) (theme.Descriptor, error) {
	raw, ok, err := r.Settings.Get(ctx, storage.KeyActiveTheme)
	if err != nil {
		return theme.Descriptor{}, err
	}
	if !ok {
		return theme.For(s.defaultTheme), nil
	}
	d := theme.For(theme.ID(raw))
	locked, _, err := s.locked(ctx, r, d.ID)
	if err != nil {
		return theme.Descriptor{}, err
	}
	if locked {
		return theme.For(s.defaultTheme), nil
	}
	return d, nil
}

// SetTheme switches the active theme. Unknown ids resolve to the default
// theme; locked themes are refused with LockedThemeError.
func (s *Service) SetTheme(ctx context.Context, id theme.ID) (theme.Descriptor, error) {
	return s.setTheme(ctx, s.repos, id)
}

func (s *Service) setTheme(ctx context.Context, r storage.Repos, id theme.ID) (theme.Descriptor, error) {
	d := theme.For(id)
	locked, reward, err := s.locked(ctx, r, d.ID)
	if err != nil {
		return theme.Descriptor{}, err
	}
	if locked {
		return theme.Descriptor{}, LockedThemeError{Theme: d.ID, RewardID: reward}
	}
	if err := r.Settings.Set(ctx, storage.KeyActiveTheme, string(d.ID)); err != nil {
		return theme.Descriptor{}, err
	}
	s.log.Info("theme switched", zap.String("theme", string(d.ID)))
	return d, nil
}

func (s *Service) locked(ctx context.Context, r storage.Repos, id theme.ID) (bool, string, error) {
	var hasErr error
	ok := theme.Available(id, func(reward string) bool {
		has, err := r.Rewards.Has(ctx, reward)
		if err != nil {
			hasErr = err
		}
		return has
	})
	if hasErr != nil {
		return false, "", hasErr
	}
	if ok {
		return false, "", nil
	}
	reward, _ := theme.RewardID(id)
	return true, reward, nil
}

// ThemeStatuses lists every theme in declaration order with its lock state.
func (s *Service) ThemeStatuses(ctx context.Context) ([]ThemeStatus, error) {
	active, err := s.ActiveTheme(ctx)
	if err != nil {
		return nil, err
	}
	var out []ThemeStatus
	for _, d := range theme.All() {
		locked, reward, err := s.locked(ctx, s.repos, d.ID)
		if err != nil {
			return nil, err
		}
		if reward == "" {
			reward, _ = theme.RewardID(d.ID)
		}
		out = append(out, ThemeStatus{
			Theme:    d,
			Locked:   locked,
			RewardID: reward,
			Active:   d.ID == active.ID,
		})
	}
	return out, nil
}
