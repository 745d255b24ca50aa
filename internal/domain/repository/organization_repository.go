package repository

import (
	"context"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
)

// OrganizationRepository define el puerto hacia el backend para Organization (DIP).
// La implementación vive en infrastructure.
type OrganizationRepository interface {
	List(ctx context.Context, q ListQuery) (*Page[entity.Organization], error)
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	Create(ctx context.Context, org *entity.Organization) error
	Update(ctx context.Context, org *entity.Organization) error
	Delete(ctx context.Context, id string) error
}
