package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
)

// OrganizationUseCase aplica las reglas de la consola para organizaciones.
type OrganizationUseCase struct {
	repo     repository.OrganizationRepository
	pageSize int
}

// NewOrganizationUseCase construye el caso de uso con el puerto del backend.
func NewOrganizationUseCase(repo repository.OrganizationRepository, pageSize int) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo, pageSize: pageSize}
}

// List lista organizaciones con paginación y búsqueda por nombre.
func (uc *OrganizationUseCase) List(ctx context.Context, filter dto.NameFilter, page int) (*dto.PageResult[dto.OrganizationRow], error) {
	res, err := fetchPage(ctx, uc.repo.List, uc.pageSize, page, filter.Params(), nil, toOrganizationRow)
	if err != nil {
		return res, fmt.Errorf("organizaciones: listar: %w", err)
	}
	return res, nil
}

// Options todas las organizaciones para el selector del modal de cliente.
func (uc *OrganizationUseCase) Options(ctx context.Context) ([]dto.OrganizationRow, error) {
	page, err := uc.repo.List(ctx, repository.ListQuery{Page: 1, Limit: selectorLimit})
	if err != nil {
		return nil, fmt.Errorf("organizaciones: opciones: %w", err)
	}
	out := make([]dto.OrganizationRow, 0, len(page.Items))
	for i, o := range page.Items {
		out = append(out, toOrganizationRow(i+1, o))
	}
	return out, nil
}

// Get obtiene una organización por ID.
func (uc *OrganizationUseCase) Get(ctx context.Context, id string) (*dto.OrganizationDetail, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.OrganizationDetail{ID: org.ID, Name: org.Name}, nil
}

// Create valida y crea la organización.
func (uc *OrganizationUseCase) Create(ctx context.Context, form dto.OrganizationForm) error {
	org, err := ValidateOrganizationForm(form)
	if err != nil {
		return err
	}
	return uc.repo.Create(ctx, org)
}

// Update valida y renombra la organización.
func (uc *OrganizationUseCase) Update(ctx context.Context, id string, form dto.OrganizationForm) error {
	org, err := ValidateOrganizationForm(form)
	if err != nil {
		return err
	}
	org.ID = id
	return uc.repo.Update(ctx, org)
}

// Delete elimina la organización.
func (uc *OrganizationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
