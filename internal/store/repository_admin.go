package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/models"
)

// adminRepository is the SQL-backed implementation of [AdminRepository].
// It manages the single row of the "admins" table stored under
// [models.AdminSlot].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Password
// hashes are never logged.
type adminRepository struct {
	*DB
	logger *logger.Logger
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAdmin inserts the administrator into the singleton slot.
//
// The slot is enforced by the primary key, so concurrent seeding attempts
// cannot create a second record: the loser receives a unique violation that
// is reported as [ErrAdminAlreadyExists].
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	admin.ID = models.AdminSlot
	query, args, err := buildInsertAdminQuery(r.builder, admin)
	if err != nil {
		log.Err(err).Str("func", "adminRepository.CreateAdmin").Msg("failed to build query")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == UniqueViolation {
			log.Debug().Str("func", "adminRepository.CreateAdmin").Msg("admin slot is already taken")
			return models.Admin{}, ErrAdminAlreadyExists
		}
		log.Err(err).Str("func", "adminRepository.CreateAdmin").Msg("failed to insert admin")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return admin, nil
}

// GetAdmin returns the administrator or [ErrAdminNotFound] if none was seeded.
func (r *adminRepository) GetAdmin(ctx context.Context) (models.Admin, error) {
	query, args, err := buildSelectAdminQuery(r.builder)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "adminRepository.GetAdmin", query, args)
}

// FindAdminByUsername returns the administrator if its username matches.
func (r *adminRepository) FindAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	query, args, err := buildSelectAdminByUsernameQuery(r.builder, username)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "adminRepository.FindAdminByUsername", query, args)
}

// UpdateAdmin writes the non-empty fields and increments the session version
// with a single UPDATE, then returns the stored record.
func (r *adminRepository) UpdateAdmin(ctx context.Context, username, passwordHash string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAdminQuery(r.builder, username, passwordHash, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "adminRepository.UpdateAdmin").Msg("failed to build query")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "adminRepository.UpdateAdmin").Msg("failed to update admin")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Admin{}, ErrAdminNotFound
	}

	return r.GetAdmin(ctx)
}

func (r *adminRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var admin models.Admin
	err := r.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.SessionVersion,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		log.Err(err).Str("func", funcName).Msg("failed to scan admin")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return admin, nil
}
