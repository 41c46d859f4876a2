package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/svcadmin/internal/common"
	"github.com/dmitrijs2005/svcadmin/internal/dbx"
	"github.com/dmitrijs2005/svcadmin/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, svc *models.Service) (*models.Service, error) {

	query :=
		`INSERT INTO services (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, svc.Name, svc.Description).
		Scan(&svc.ID, &svc.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return svc, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	query :=
		`SELECT id, name, description, created_at FROM services
		 WHERE id = $1
		 `

	svc := &models.Service{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&svc.ID, &svc.Name, &svc.Description, &svc.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return svc, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Service, error) {
	query :=
		`SELECT id, name, description, created_at FROM services
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Service
	for rows.Next() {
		svc := &models.Service{}
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, svc *models.Service) (*models.Service, error) {
	query :=
		`UPDATE services SET name = $2, description = $3
		 WHERE id = $1
		 RETURNING id, name, description, created_at
		 `

	updated := &models.Service{}
	err := r.db.QueryRowContext(ctx, query, svc.ID, svc.Name, svc.Description).
		Scan(&updated.ID, &updated.Name, &updated.Description, &updated.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM services
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
