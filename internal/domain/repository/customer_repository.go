package repository

import (
	"context"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
)

// CustomerRepository define el puerto hacia el backend para Customer.
type CustomerRepository interface {
	List(ctx context.Context, q ListQuery) (*Page[entity.Customer], error)
	ListByOrganization(ctx context.Context, organizationID string, q ListQuery) (*Page[entity.Customer], error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
