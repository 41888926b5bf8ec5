package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/store"
	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/internal/validators"
	"github.com/MKhiriev/portfolio-server/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It seeds and verifies the single administrator using an AdminRepository
// and bcrypt, and manages the session token lifecycle.
type authService struct {
	// adminRepository is the data-access layer for the administrator record.
	adminRepository store.AdminRepository

	validator validators.Validator

	// seedUsername and seedPassword are used only when the store is empty.
	seedUsername string
	seedPassword string

	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AdminRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(adminRepository store.AdminRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		adminRepository: adminRepository,
		validator:       validators.NewContentValidator(),
		seedUsername:    cfg.AdminUsername,
		seedPassword:    cfg.AdminPassword,
		bcryptCost:      cost,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Login authenticates the administrator.
//
// When the store is empty the administrator is seeded from configuration
// first. An unknown username and a wrong password are logged differently
// but both are returned as ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Admin, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Info().Err(err).Msg("login rejected: incomplete credentials")
		return models.Admin{}, ErrInvalidCredentials
	}

	if err := a.ensureAdmin(ctx); err != nil {
		return models.Admin{}, err
	}

	admin, err := a.adminRepository.FindAdminByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			log.Info().Str("username", credentials.Username).Msg("login rejected: unknown username")
			return models.Admin{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("admin search by username failed")
		return models.Admin{}, fmt.Errorf("admin search by username failed: %w", mapStoreError(err))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Str("username", admin.Username).Msg("login rejected: wrong password")
		return models.Admin{}, ErrInvalidCredentials
	}

	return admin, nil
}

// ensureAdmin seeds the administrator if the store is empty. Losing a
// concurrent seeding race is not an error: the winner's record is used.
func (a *authService) ensureAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := a.adminRepository.GetAdmin(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrAdminNotFound) {
		log.Err(err).Msg("admin lookup failed")
		return fmt.Errorf("admin lookup failed: %w", mapStoreError(err))
	}

	hash, err := a.hashPassword(a.seedPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAdminSeedingFailed, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = a.adminRepository.CreateAdmin(ctx, models.Admin{
		Username:     strings.TrimSpace(a.seedUsername),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	switch {
	case err == nil:
		log.Info().Msg("administrator seeded from configuration")
		return nil
	case errors.Is(err, store.ErrAdminAlreadyExists):
		log.Debug().Msg("administrator was seeded concurrently")
		return nil
	default:
		log.Err(err).Msg("admin seeding failed")
		return fmt.Errorf("%w: %w", ErrAdminSeedingFailed, mapStoreError(err))
	}
}

// CreateToken issues a signed session token for the administrator.
//
// The token carries the configured issuer, expires after tokenDuration and
// embeds the current session version of admin.
func (a *authService) CreateToken(ctx context.Context, admin models.Admin) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, admin.ID, admin.SessionVersion, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw session token.
//
// Signature, issuer and expiry failures are normalised to
// ErrTokenIsExpiredOrInvalid. A token whose session version no longer
// matches the stored administrator yields ErrSessionRevoked.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	admin, err := a.adminRepository.GetAdmin(ctx)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			return models.Token{}, ErrSessionRevoked
		}
		log.Err(err).Msg("admin lookup failed")
		return models.Token{}, fmt.Errorf("admin lookup failed: %w", mapStoreError(err))
	}

	if token.AdminID != admin.ID || token.SessionVersion != admin.SessionVersion {
		log.Info().
			Int64("token_version", token.SessionVersion).
			Int64("current_version", admin.SessionVersion).
			Msg("stale session token")
		return models.Token{}, ErrSessionRevoked
	}

	return token, nil
}

// RotateCredentials updates the administrator username and/or password in
// one write that also bumps the session version.
func (a *authService) RotateCredentials(ctx context.Context, update models.CredentialsUpdate) error {
	log := logger.FromContext(ctx)

	update.NewUsername = strings.TrimSpace(update.NewUsername)
	if err := a.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	var hash string
	if strings.TrimSpace(update.NewPassword) != "" {
		var err error
		if hash, err = a.hashPassword(update.NewPassword); err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return fmt.Errorf("%w: %w", ErrBadRequest, bcrypt.ErrPasswordTooLong)
			}
			return err
		}
	}

	admin, err := a.adminRepository.UpdateAdmin(ctx, update.NewUsername, hash)
	if err != nil {
		log.Err(err).Msg("credential rotation failed")
		return mapStoreError(err)
	}

	log.Info().
		Bool("username_changed", update.NewUsername != "").
		Bool("password_changed", hash != "").
		Int64("session_version", admin.SessionVersion).
		Msg("administrator credentials rotated")
	return nil
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}
