package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/op-character-creator/internal/catalog"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/kvstore"
	"github.com/KirkDiggler/op-character-creator/internal/orchestrators/character"
	"github.com/KirkDiggler/op-character-creator/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/op-character-creator/internal/repositories/character"
	settingsrepo "github.com/KirkDiggler/op-character-creator/internal/repositories/settings"
	"github.com/KirkDiggler/op-character-creator/internal/settings"
)

// app is the set of services one command works with
type app struct {
	logger     *slog.Logger
	closer     io.Closer
	catalog    *catalog.Service
	settings   *settings.Manager
	characters character.Service
}

// newApp wires the services. The catalog is fetched only when loadCatalog
// is set; settings commands work without the data document.
func (o *rootOptions) newApp(ctx context.Context, loadCatalog bool) (*app, error) {
	store, closer, err := kvstore.Open(ctx, o.cfg.StoreConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open store")
	}

	a, err := o.wire(ctx, store)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	a.closer = closer

	if loadCatalog {
		if _, err := a.catalog.Load(ctx); err != nil {
			_ = closer.Close()
			return nil, errors.Wrapf(err, "could not load character data from %s, check the source and run the command again",
				o.cfg.DataSource)
		}
	}

	return a, nil
}

func (o *rootOptions) wire(ctx context.Context, store kvstore.Store) (*app, error) {
	settingsRepo, err := settingsrepo.NewRepository(&settingsrepo.Config{Store: store, Logger: o.logger})
	if err != nil {
		return nil, err
	}
	manager, err := settings.NewManager(ctx, &settings.Config{Repository: settingsRepo, Logger: o.logger})
	if err != nil {
		return nil, err
	}

	cat, err := catalog.NewService(&catalog.Config{
		Source: catalog.NewSource(o.cfg.DataSource),
		Logger: o.logger,
	})
	if err != nil {
		return nil, err
	}

	charRepo, err := characterrepo.NewRepository(&characterrepo.Config{Store: store, Logger: o.logger})
	if err != nil {
		return nil, err
	}
	orchestrator, err := character.New(&character.Config{
		Catalog:       cat,
		Settings:      manager,
		CharacterRepo: charRepo,
		IDGenerator:   idgen.New(o.cfg.IDStyle, character.IDPrefix),
		Logger:        o.logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		logger:     o.logger,
		catalog:    cat,
		settings:   manager,
		characters: orchestrator,
	}, nil
}

// Close releases the store
func (a *app) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
