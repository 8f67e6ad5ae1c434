package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/levelup/internal/config"
	"github.com/MKhiriev/levelup/internal/logger"
)

// Storages bundles the repositories used by the services.
type Storages struct {
	SlotStorage        SlotStorage
	DocumentRepository DocumentRepository
	UserRepository     UserRepository

	closers []func() error
}

// NewStorages opens the slot storage selected by cfg.Backend, applies
// migrations for SQL backends and wires the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	slots, err := storages.openSlotStorage(ctx, cfg, log)
	if err != nil {
		return nil, errors.Join(err, storages.Close())
	}

	storages.SlotStorage = slots
	storages.DocumentRepository = NewDocumentRepository(slots, cfg.Slot, log.WithComponent("documents"))
	storages.UserRepository = NewUserRepository(log.WithComponent("users"))

	log.Info().Str("backend", cfg.Backend).Str("slot", cfg.Slot).Msg("storage initialized")
	return storages, nil
}

func (s *Storages) openSlotStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (SlotStorage, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemorySlotStorage(), nil

	case config.BackendFile:
		return NewFileSlotStorage(cfg.Files.Dir, log)

	case config.BackendSQLite, config.BackendPostgres:
		connect := NewConnectSQLite
		if cfg.Backend == config.BackendPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.DB.DSN, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, err
		}
		return NewSQLSlotStorage(db), nil

	case config.BackendRedis:
		client, err := NewConnectRedis(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Close)
		return NewRedisSlotStorage(client, cfg.Redis.Prefix, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases backend connections.
func (s *Storages) Close() error {
	var err error
	for _, closeFn := range s.closers {
		err = errors.Join(err, closeFn())
	}
	s.closers = nil
	return err
}
