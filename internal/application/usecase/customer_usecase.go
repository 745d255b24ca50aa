package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
)

// selectorLimit registros que se piden para llenar un <select> de un modal.
const selectorLimit = 1000

// CustomerUseCase listados y modales de clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	pageSize int
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, pageSize int) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, pageSize: pageSize}
}

// List clientes con búsqueda por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, filter dto.NameFilter, page int) (*dto.PageResult[dto.CustomerRow], error) {
	res, err := fetchPage(ctx, uc.repo.List, uc.pageSize, page, filter.Params(), nil, toCustomerRow)
	if err != nil {
		return res, fmt.Errorf("clientes: listar: %w", err)
	}
	return res, nil
}

// ListByOrganization clientes de una organización (vista de detalle).
func (uc *CustomerUseCase) ListByOrganization(ctx context.Context, organizationID string, page int) (*dto.PageResult[dto.CustomerRow], error) {
	fetch := func(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Customer], error) {
		return uc.repo.ListByOrganization(ctx, organizationID, q)
	}
	res, err := fetchPage(ctx, fetch, uc.pageSize, page, nil, nil, toCustomerRow)
	if err != nil {
		return res, fmt.Errorf("clientes: listar por organización %s: %w", organizationID, err)
	}
	return res, nil
}

// Options todos los clientes para el selector del modal de gasto.
func (uc *CustomerUseCase) Options(ctx context.Context) ([]dto.CustomerRow, error) {
	page, err := uc.repo.List(ctx, repository.ListQuery{Page: 1, Limit: selectorLimit})
	if err != nil {
		return nil, fmt.Errorf("clientes: opciones: %w", err)
	}
	out := make([]dto.CustomerRow, 0, len(page.Items))
	for i, c := range page.Items {
		out = append(out, toCustomerRow(i+1, c))
	}
	return out, nil
}

// Get cabecera del detalle de un cliente.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerDetail, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CustomerDetail{
		ID:               c.ID,
		Name:             c.Name,
		OrganizationID:   c.Organization.ID,
		OrganizationName: c.Organization.Label(),
	}, nil
}

// Create valida y crea el cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, form dto.CustomerForm) error {
	c, err := ValidateCustomerForm(form)
	if err != nil {
		return err
	}
	return uc.repo.Create(ctx, c)
}

// Update valida y actualiza el cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, form dto.CustomerForm) error {
	c, err := ValidateCustomerForm(form)
	if err != nil {
		return err
	}
	c.ID = id
	return uc.repo.Update(ctx, c)
}

// Delete elimina el cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
