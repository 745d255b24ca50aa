package restapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository clientes vía /customers y /customers/organization/:id.
type CustomerRepository struct {
	c *Client
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(c *Client) *CustomerRepository {
	return &CustomerRepository{c: c}
}

func (r *CustomerRepository) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Customer], error) {
	var env listEnvelope[customerWire]
	if err := r.c.do(ctx, http.MethodGet, "/customers", listQuery(q), nil, &env); err != nil {
		return nil, err
	}
	return toPage(env, customerWire.toEntity), nil
}

func (r *CustomerRepository) ListByOrganization(ctx context.Context, organizationID string, q repository.ListQuery) (*repository.Page[entity.Customer], error) {
	var env listEnvelope[customerWire]
	if err := r.c.do(ctx, http.MethodGet, "/customers/organization/"+escape(organizationID), listQuery(q), nil, &env); err != nil {
		return nil, err
	}
	return toPage(env, customerWire.toEntity), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var env itemEnvelope[customerWire]
	if err := r.c.do(ctx, http.MethodGet, "/customers/"+escape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	if env.Data.ID == "" {
		return nil, notFound("cliente", id)
	}
	c := env.Data.toEntity()
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	return r.c.do(ctx, http.MethodPost, "/customers", nil, customerPayload{Name: c.Name, Organization: c.Organization.ID}, nil)
}

func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	return r.c.do(ctx, http.MethodPut, "/customers/"+escape(c.ID), nil, customerPayload{Name: c.Name, Organization: c.Organization.ID}, nil)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/customers/"+escape(id), nil, nil, nil)
}
