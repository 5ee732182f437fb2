package repo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/holistiq/internal/config"
)

// OpenBackend opens the backend selected by cfg.Driver. DriverNone returns
// (nil, nil), which NewStore turns into a degraded Store.
func OpenBackend(ctx context.Context, cfg config.StoreConfig) (Backend, error) {
	switch cfg.Driver {
	case config.DriverNone:
		return nil, nil
	case config.DriverSQLite:
		db, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", cfg.SQLitePath, err)
		}
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return NewSQLBackend(db), nil
	case config.DriverMongo, "":
		b, err := OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Open wraps OpenBackend in a Store. When the backend cannot be opened the
// error is logged and a degraded Store is returned: writes are dropped and
// reads report ErrStoreUnavailable until the process is restarted.
func Open(ctx context.Context, cfg config.StoreConfig) *Store {
	b, err := OpenBackend(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Str("driver", cfg.Driver).Msg("record store unavailable, running without persistence")
		return NewStore(nil, cfg.WriteTimeout)
	}
	s := NewStore(b, cfg.WriteTimeout)
	log.Info().Str("backend", s.BackendName()).Msg("record store ready")
	return s
}
