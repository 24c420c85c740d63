// Package app wires configuration, storage backend and the account store
// together for the command-line client.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/config"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/metadata"
	"github.com/dmitrijs2005/accountkeeper/internal/services"
)

type App struct {
	Config *config.Config
	Store  *services.AccountStore
	Repo   metadata.Repository
	Log    logging.Logger

	db *sql.DB
}

// New opens the backend selected by cfg and loads the account store from it.
// A recovered load problem is logged and left on Store.LoadError.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	a := &App{Config: cfg, Log: log}

	repo, err := a.openRepository(ctx)
	if err != nil {
		return nil, err
	}
	a.Repo = repo

	gen, err := services.IDGeneratorByName(cfg.IDStrategy)
	if err != nil {
		a.Close()
		return nil, err
	}

	store, err := services.NewAccountStore(ctx, repo,
		services.WithKey(cfg.StorageKey),
		services.WithIDGenerator(gen),
		services.WithLogger(log),
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Store = store

	log.Debug(ctx, "app ready", "backend", cfg.Backend, "data", cfg.DataPath, "accounts", store.Count())
	return a, nil
}

func (a *App) openRepository(ctx context.Context) (metadata.Repository, error) {
	switch a.Config.Backend {
	case config.BackendSQLite:
		db, err := dbx.OpenSQLite(ctx, a.Config.DataPath)
		if err != nil {
			return nil, err
		}
		a.db = db
		return metadata.NewSQLiteRepository(db), nil

	case config.BackendFile:
		return metadata.NewFileRepository(a.Config.DataPath)

	case config.BackendMemory:
		return metadata.NewMemoryRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported backend %q", a.Config.Backend)
	}
}

// Close releases the backend. It is safe to call more than once.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
