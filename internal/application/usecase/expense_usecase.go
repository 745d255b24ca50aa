package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
)

// ExpenseUseCase listados y modales de gastos.
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	pageSize int
	now      func() time.Time
}

// NewExpenseUseCase construye el caso de uso con el puerto del backend.
func NewExpenseUseCase(repo repository.ExpenseRepository, pageSize int) *ExpenseUseCase {
	return &ExpenseUseCase{
		repo:     repo,
		pageSize: pageSize,
		now:      func() time.Time { return time.Now().In(datefmt.Location()) },
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ExpenseUseCase) WithClock(now func() time.Time) *ExpenseUseCase {
	uc.now = now
	return uc
}

// PageSize tamaño de página configurado.
func (uc *ExpenseUseCase) PageSize() int { return uc.pageSize }

// List pantalla principal de gastos: filtros en el backend más un filtro adicional
// sobre la página recibida. El total sigue siendo el del backend.
func (uc *ExpenseUseCase) List(ctx context.Context, filter dto.ExpenseFilter, page int) (*dto.PageResult[dto.ExpenseRow], error) {
	filter.Normalize()
	now := uc.now()
	keep := func(e entity.Expense) bool { return filter.Matches(e, now) }
	res, err := fetchPage(ctx, uc.repo.List, uc.pageSize, page, filter.Params(), keep, toExpenseRow)
	if err != nil {
		return res, fmt.Errorf("gastos: listar: %w", err)
	}
	return res, nil
}

// ListByCustomer gastos de un cliente (vista de detalle), con el total de importes del backend.
func (uc *ExpenseUseCase) ListByCustomer(ctx context.Context, customerID string, page int) (*dto.PageResult[dto.ExpenseRow], error) {
	fetch := func(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
		return uc.repo.ListByCustomer(ctx, customerID, q)
	}
	res, err := fetchPage(ctx, fetch, uc.pageSize, page, nil, nil, toExpenseRow)
	if err != nil {
		return res, fmt.Errorf("gastos: listar por cliente %s: %w", customerID, err)
	}
	return res, nil
}

// Get un gasto para el modal de edición.
func (uc *ExpenseUseCase) Get(ctx context.Context, id string) (*dto.ExpenseRow, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	row := toExpenseRow(0, *e)
	return &row, nil
}

// Create valida y crea el gasto. Si la validación falla no se llama al backend.
func (uc *ExpenseUseCase) Create(ctx context.Context, form dto.ExpenseForm) error {
	e, err := ValidateExpenseForm(form, uc.now())
	if err != nil {
		return err
	}
	return uc.repo.Create(ctx, e)
}

// Update valida y actualiza el gasto.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, form dto.ExpenseForm) error {
	e, err := ValidateExpenseForm(form, uc.now())
	if err != nil {
		return err
	}
	e.ID = id
	return uc.repo.Update(ctx, e)
}

// Delete elimina el gasto (la confirmación se resuelve en la capa HTTP).
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Total agregado de gastos; organizationID vacío = global.
func (uc *ExpenseUseCase) Total(ctx context.Context, organizationID string) (*dto.ExpenseTotalResponse, error) {
	t, err := uc.repo.Total(ctx, organizationID)
	if err != nil {
		return &dto.ExpenseTotalResponse{}, fmt.Errorf("gastos: total: %w", err)
	}
	return &dto.ExpenseTotalResponse{Total: t.Total.Decimal(), Count: t.Count}, nil
}
