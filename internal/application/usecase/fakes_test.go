package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var errBackend = errors.New("backend caído")

// fakeExpenseRepo backend en memoria que registra las consultas recibidas.
type fakeExpenseRepo struct {
	mu        sync.Mutex
	items     []entity.Expense
	fail      bool
	queries   []repository.ListQuery
	created   []*entity.Expense
	updated   []*entity.Expense
	deleted   []string
	totalResp entity.ExpenseTotal
}

func (f *fakeExpenseRepo) page(q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.fail {
		return nil, errBackend
	}
	from := (q.Page - 1) * q.Limit
	to := from + q.Limit
	if from > len(f.items) {
		from = len(f.items)
	}
	if to > len(f.items) {
		to = len(f.items)
	}
	sum := decimal.Zero
	for _, e := range f.items {
		sum = sum.Add(e.Amount.Decimal())
	}
	return &repository.Page[entity.Expense]{
		Items:       append([]entity.Expense(nil), f.items[from:to]...),
		Total:       len(f.items),
		TotalAmount: sum,
	}, nil
}

func (f *fakeExpenseRepo) List(_ context.Context, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	return f.page(q)
}

func (f *fakeExpenseRepo) ListByCustomer(_ context.Context, _ string, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	return f.page(q)
}

func (f *fakeExpenseRepo) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			e := f.items[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	if f.fail {
		return errBackend
	}
	f.created = append(f.created, e)
	return nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	f.updated = append(f.updated, e)
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeExpenseRepo) Total(context.Context, string) (*entity.ExpenseTotal, error) {
	if f.fail {
		return nil, errBackend
	}
	t := f.totalResp
	return &t, nil
}

func expenses(n int) []entity.Expense {
	out := make([]entity.Expense, n)
	for i := range out {
		out[i] = entity.Expense{
			ID:     string(rune('a' + i)),
			Item:   "item",
			Amount: entity.NewAmount(decimal.NewFromInt(int64(i + 1))),
			Date:   "2024-03-01T10:00:00Z",
		}
	}
	return out
}
