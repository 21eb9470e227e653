package root

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/byten0kami/Neon-sub001/internal/config"
	"github.com/byten0kami/Neon-sub001/internal/engine"
	"github.com/byten0kami/Neon-sub001/internal/storage"
	"github.com/byten0kami/Neon-sub001/internal/theme"
	"github.com/byten0kami/Neon-sub001/internal/ui"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDB != "" {
		cfg.Override(config.KeyDBPath, flagDB)
	}
	if flagLogLevel != "" {
		cfg.Override(config.KeyLogLevel, flagLogLevel)
	}
	if flagNoColor {
		cfg.Override(config.KeyNoColor, true)
	}
	return cfg, nil
}

// openService wires config, logging and storage into a service and styles
// the terminal after the active theme.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := config.NewLogger(cfg.Viper())
	if err != nil {
		return nil, nil, err
	}

	db, err := openStore(ctx, log, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	var opts []engine.Option
	if id, ok := theme.ParseID(cfg.DefaultTheme); ok {
		opts = append(opts, engine.WithDefaultTheme(id))
	}
	svc := engine.NewService(db, log, opts...)

	ui.ApplyColorProfile(cfg.NoColor)
	if d, err := svc.ActiveTheme(ctx); err == nil {
		ui.Use(d)
	}

	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return svc, cleanup, nil
}

// openStore opens the database at override, or the default path. On
// failure the error is logged and the logger flushed.
func openStore(ctx context.Context, log *zap.Logger, override string) (*sql.DB, error) {
	path, err := storage.ResolveDBPath(override)
	if err == nil {
		var db *sql.DB
		if db, err = storage.Open(ctx, path); err == nil {
			log.Debug("database open", zap.String("path", path))
			return db, nil
		}
	}
	log.Error("open database", zap.String("path", path), zap.Error(err))
	_ = log.Sync()
	return nil, err
}
