package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)

// ExpenseRepository gastos vía /expenses y /customers/:id/expenses.
type ExpenseRepository struct {
	c *Client
}

// NewExpenseRepository construye el repositorio.
func NewExpenseRepository(c *Client) *ExpenseRepository {
	return &ExpenseRepository{c: c}
}

func (r *ExpenseRepository) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	var env listEnvelope[expenseWire]
	if err := r.c.do(ctx, http.MethodGet, "/expenses", listQuery(q), nil, &env); err != nil {
		return nil, err
	}
	return toPage(env, expenseWire.toEntity), nil
}

func (r *ExpenseRepository) ListByCustomer(ctx context.Context, customerID string, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	var env listEnvelope[expenseWire]
	if err := r.c.do(ctx, http.MethodGet, "/customers/"+escape(customerID)+"/expenses", listQuery(q), nil, &env); err != nil {
		return nil, err
	}
	return toPage(env, expenseWire.toEntity), nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var env itemEnvelope[expenseWire]
	if err := r.c.do(ctx, http.MethodGet, "/expenses/"+escape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	if env.Data.ID == "" {
		return nil, notFound("gasto", id)
	}
	e := env.Data.toEntity()
	return &e, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	return r.c.do(ctx, http.MethodPost, "/expenses", nil, newExpensePayload(e), nil)
}

func (r *ExpenseRepository) Update(ctx context.Context, e *entity.Expense) error {
	return r.c.do(ctx, http.MethodPut, "/expenses/"+escape(e.ID), nil, newExpensePayload(e), nil)
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/expenses/"+escape(id), nil, nil, nil)
}

// Total GET /expenses/total?organizationId= → {data:{total,count}}.
func (r *ExpenseRepository) Total(ctx context.Context, organizationID string) (*entity.ExpenseTotal, error) {
	q := url.Values{}
	if organizationID != "" {
		q.Set("organizationId", organizationID)
	}
	var env itemEnvelope[totalWire]
	if err := r.c.do(ctx, http.MethodGet, "/expenses/total", q, nil, &env); err != nil {
		return nil, err
	}
	return &entity.ExpenseTotal{Total: env.Data.Total, Count: env.Data.Count}, nil
}
