package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
)

// Storages groups the repositories backed by one database connection.
type Storages struct {
	AdminRepository   AdminRepository
	PostRepository    PostRepository
	ProjectRepository ProjectRepository
	ResumeRepository  ResumeRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DSN, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already migrated connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AdminRepository:   NewAdminRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		ProjectRepository: NewProjectRepository(db, log),
		ResumeRepository:  NewResumeRepository(db, log),
		db:                db,
	}
}

// Ping checks that the underlying connection is alive.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
