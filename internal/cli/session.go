package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-biodata"
	"github.com/goliatone/go-biodata/pkg/session"
	"github.com/goliatone/go-biodata/pkg/store"
)

// openSession builds the store backend from config and restores the
// persisted session. The returned cleanup flushes pending saves and closes
// the backend.
func openSession(cmd *cobra.Command, configPath string) (*session.Controller, func(), error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	var backend store.Store
	switch cfg.Backend {
	case "file", "":
		backend, err = store.NewFileStore(cfg.StateDir)
	case "sqlite":
		backend, err = store.NewSQLiteStore(cfg.Database)
	case "memory":
		backend = store.NewMemoryStore()
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (expected file, sqlite, or memory)", cfg.Backend)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithNotifier(session.NotifierFunc(func(level session.NotifyLevel, msg string) {
			if level == session.NotifyError {
				logger.Error(msg)
				return
			}
			logger.Info(msg)
		})),
	}
	if cfg.SaveDelayMS > 0 {
		opts = append(opts, session.WithSaveDelay(time.Duration(cfg.SaveDelayMS)*time.Millisecond))
	}

	// The config template only applies while no selection was ever persisted;
	// the controller itself defaults to the catalog's first template.
	applyTemplate := false
	if cfg.Template != "" {
		data, found, err := backend.Get(ctx, store.KeyTemplate)
		applyTemplate = err == nil && (!found || len(data) == 0)
	}

	controller, err := biodata.NewSession(backend, opts...)
	if err != nil {
		_ = backend.Close()
		return nil, nil, err
	}
	controller.Restore(ctx)

	if applyTemplate {
		if err := controller.SelectTemplate(ctx, cfg.Template); err != nil {
			logger.Warn("configured template not applied", "template", cfg.Template, "err", err)
		}
	}

	logger.Debug("session restored", "backend", cfg.Backend, "section", controller.State().Section)

	cleanup := func() {
		controller.Close(ctx)
		if err := backend.Close(); err != nil {
			logger.Warn("close backend", "err", err)
		}
	}
	return controller, cleanup, nil
}
