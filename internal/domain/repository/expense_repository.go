package repository

import (
	"context"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
)

// ExpenseRepository define el puerto hacia el backend para Expense.
type ExpenseRepository interface {
	List(ctx context.Context, q ListQuery) (*Page[entity.Expense], error)
	ListByCustomer(ctx context.Context, customerID string, q ListQuery) (*Page[entity.Expense], error)
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Create(ctx context.Context, expense *entity.Expense) error
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id string) error
	// Total agregado; organizationID vacío = todas las organizaciones.
	Total(ctx context.Context, organizationID string) (*entity.ExpenseTotal, error)
}
