package restapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepository)(nil)

// OrganizationRepository organizaciones vía /organizations.
type OrganizationRepository struct {
	c *Client
}

// NewOrganizationRepository construye el repositorio.
func NewOrganizationRepository(c *Client) *OrganizationRepository {
	return &OrganizationRepository{c: c}
}

func (r *OrganizationRepository) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Organization], error) {
	var env listEnvelope[organizationWire]
	if err := r.c.do(ctx, http.MethodGet, "/organizations", listQuery(q), nil, &env); err != nil {
		return nil, err
	}
	return toPage(env, organizationWire.toEntity), nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	var env itemEnvelope[organizationWire]
	if err := r.c.do(ctx, http.MethodGet, "/organizations/"+escape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	if env.Data.ID == "" {
		return nil, notFound("organización", id)
	}
	o := env.Data.toEntity()
	return &o, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, o *entity.Organization) error {
	return r.c.do(ctx, http.MethodPost, "/organizations", nil, organizationPayload{Name: o.Name}, nil)
}

func (r *OrganizationRepository) Update(ctx context.Context, o *entity.Organization) error {
	return r.c.do(ctx, http.MethodPut, "/organizations/"+escape(o.ID), nil, organizationPayload{Name: o.Name}, nil)
}

func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/organizations/"+escape(id), nil, nil, nil)
}
