package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/svcadmin/internal/common"
	"github.com/dmitrijs2005/svcadmin/internal/server/models"
	"github.com/dmitrijs2005/svcadmin/internal/server/repositories/repomanager"
)

// ServiceAdminService implements CRUD management over service records.
type ServiceAdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewServiceAdminService(db *sql.DB, m repomanager.RepositoryManager) *ServiceAdminService {
	return &ServiceAdminService{db: db, repomanager: m}
}

func (s *ServiceAdminService) Create(ctx context.Context, name, description string) (*models.Service, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.ErrorValidation
	}
	svc, err := s.repomanager.Services(s.db).Create(ctx, &models.Service{Name: name, Description: description})
	if err != nil {
		return nil, fmt.Errorf("error creating service: %w", err)
	}
	return svc, nil
}

func (s *ServiceAdminService) List(ctx context.Context) ([]*models.Service, error) {
	result, err := s.repomanager.Services(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	return result, nil
}

func (s *ServiceAdminService) Get(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.repomanager.Services(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting service: %w", err)
	}
	return svc, nil
}

func (s *ServiceAdminService) Update(ctx context.Context, id, name, description string) (*models.Service, error) {
	if id == "" || strings.TrimSpace(name) == "" {
		return nil, common.ErrorValidation
	}
	svc, err := s.repomanager.Services(s.db).Update(ctx, &models.Service{ID: id, Name: name, Description: description})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating service: %w", err)
	}
	return svc, nil
}

func (s *ServiceAdminService) Delete(ctx context.Context, id string) error {
	err := s.repomanager.Services(s.db).Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting service: %w", err)
	}
	return nil
}
