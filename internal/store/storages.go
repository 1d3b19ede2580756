package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
)

// Storages is the persistence entry point used by the service layer.
// The embedded repositories run on the pool; UnitOfWork opens a
// transaction with its own bound copy.
type Storages struct {
	*Repositories
	UnitOfWork UnitOfWork

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires every
// repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	log.Debug().Msg("creating storages")
	return &Storages{
		Repositories: newRepositories(db.DB, log),
		UnitOfWork:   NewUnitOfWork(db, log),
		db:           db,
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
