// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, credential verification, and
// issuing bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/svcadmin/internal/common"
	"github.com/dmitrijs2005/svcadmin/internal/server/auth"
	"github.com/dmitrijs2005/svcadmin/internal/server/config"
	"github.com/dmitrijs2005/svcadmin/internal/server/models"
	"github.com/dmitrijs2005/svcadmin/internal/server/repositories/repomanager"
)

// dummyDigest is a valid bcrypt digest compared against when the email is
// unknown, so that path does the same work as a wrong-password attempt.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a bearer token
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register hashes the password with a fresh salt and creates the user with an
// unset role. Uniqueness of the email is enforced solely by the store's
// unique index; there is no read-before-insert.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {

	if strings.TrimSpace(email) == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Email: email, PasswordHash: hash}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login verifies the credentials and, on success, returns a signed bearer
// token bound to the user's id. Unknown email and wrong password are
// indistinguishable to the caller: same error, comparable work done.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.VerifyPassword(password, dummyDigest)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// VerifyToken resolves a presented bearer token to the bound user id.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}
