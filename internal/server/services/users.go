package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/svcadmin/internal/common"
	"github.com/dmitrijs2005/svcadmin/internal/server/models"
	"github.com/dmitrijs2005/svcadmin/internal/server/repositories/repomanager"
)

// UserAdminService implements CRUD management over users. Password changes
// are out of its scope; Update touches non-auth fields only.
type UserAdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserAdminService(db *sql.DB, m repomanager.RepositoryManager) *UserAdminService {
	return &UserAdminService{db: db, repomanager: m}
}

func (s *UserAdminService) List(ctx context.Context) ([]*models.User, error) {
	result, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return result, nil
}

func (s *UserAdminService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

func (s *UserAdminService) Update(ctx context.Context, id, email, role string) (*models.User, error) {
	if id == "" || email == "" {
		return nil, common.ErrorValidation
	}
	user, err := s.repomanager.Users(s.db).Update(ctx, &models.User{ID: id, Email: email, Role: role})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

func (s *UserAdminService) Delete(ctx context.Context, id string) error {
	err := s.repomanager.Users(s.db).Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
