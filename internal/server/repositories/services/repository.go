package services

import (
	"context"

	"github.com/dmitrijs2005/svcadmin/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, svc *models.Service) (*models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context) ([]*models.Service, error)
	Update(ctx context.Context, svc *models.Service) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}
