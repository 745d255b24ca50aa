package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/application/export"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
	"github.com/jhoicas/gastos-admin/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// stubExpenses solo implementa lo que usan las exportaciones; cuenta las peticiones.
type stubExpenses struct {
	repository.ExpenseRepository
	items   []entity.Expense
	calls   int
	lastLim int
}

func (s *stubExpenses) ListByCustomer(_ context.Context, _ string, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	s.calls++
	s.lastLim = q.Limit
	return &repository.Page[entity.Expense]{Items: s.items, Total: len(s.items)}, nil
}

type stubCustomers struct {
	repository.CustomerRepository
	calls int
}

func (s *stubCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	s.calls++
	return &entity.Customer{ID: id, Name: "Ravi Traders"}, nil
}

type captureGenerator struct {
	report *export.Report
}

func (g *captureGenerator) GenerateExpenseReport(_ context.Context, r *export.Report) ([]byte, error) {
	g.report = r
	return []byte("%PDF-fake"), nil
}

func newDeps(items []entity.Expense) (export.Deps, *stubExpenses, *stubCustomers, *captureGenerator) {
	exp := &stubExpenses{items: items}
	cus := &stubCustomers{}
	gen := &captureGenerator{}
	return export.Deps{
		Expenses:   exp,
		Customers:  cus,
		Generator:  gen,
		Money:      money.NewFormatter("Rs.", language.English),
		FetchLimit: 1000,
	}, exp, cus, gen
}

func sample() []entity.Expense {
	return []entity.Expense{
		{Item: "Taxi", Amount: entity.ParseAmount("10"), Date: "2024-03-01T10:00:00Z"},
		{Item: "Café", Amount: entity.ParseAmount("20"), Date: "2024-03-02T10:00:00Z", Description: "reunión"},
		{Item: "Sin monto", Date: "2024-03-05T10:00:00Z"},
		{Item: "Hotel", Amount: entity.ParseAmount("1200.5"), Date: "2024-03-09T10:00:00Z"},
	}
}

func TestRangeExport_RangoInvalidoNoHacePeticiones(t *testing.T) {
	deps, exp, cus, gen := newDeps(sample())
	uc := export.NewRangeExportUseCase(deps)

	for _, req := range []dto.RangeExportRequest{
		{Start: "3", End: "2", Max: "4"},
		{Start: "0", End: "2", Max: "4"},
		{Start: "1", End: "5", Max: "4"},
	} {
		_, err := uc.Export(context.Background(), "c1", req)
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	}
	assert.Zero(t, exp.calls)
	assert.Zero(t, cus.calls)
	assert.Nil(t, gen.report)
}

func TestRangeExport_NumeraDesdeElInicio(t *testing.T) {
	datefmt.SetLocation(time.UTC)
	t.Cleanup(func() { datefmt.SetLocation(nil) })
	deps, exp, _, gen := newDeps(sample())
	uc := export.NewRangeExportUseCase(deps)

	res, err := uc.Export(context.Background(), "c1", dto.RangeExportRequest{Start: "2", End: "3", Max: "4"})
	require.NoError(t, err)

	assert.Equal(t, 1000, exp.lastLim, "se pide la colección completa")
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, "gastos_ravi_traders_2-3.pdf", res.Filename)

	r := gen.report
	require.NotNil(t, r)
	assert.Equal(t, "Gastos de Ravi Traders", r.Title)
	assert.Equal(t, "Gastos: 2 a 3", r.Subtitle)
	assert.Equal(t, "Total: Rs. 20.00", r.TotalLabel)
	require.Len(t, r.Rows, 2)
	assert.Equal(t, 2, r.Rows[0].Number)
	assert.Equal(t, "Café", r.Rows[0].Item)
	assert.Equal(t, "02-03-24", r.Rows[0].Date)
	assert.Equal(t, 3, r.Rows[1].Number)
	assert.Equal(t, "0.00", r.Rows[1].Amount)
}

func TestRangeExport_TramoVacio(t *testing.T) {
	deps, _, _, gen := newDeps(sample())
	uc := export.NewRangeExportUseCase(deps)

	_, err := uc.Export(context.Background(), "c1", dto.RangeExportRequest{Start: "8", End: "9"})
	assert.ErrorIs(t, err, domain.ErrEmptyRange)
	assert.Nil(t, gen.report, "no se genera un PDF vacío")
}

func TestDateRangeExport(t *testing.T) {
	datefmt.SetLocation(time.UTC)
	t.Cleanup(func() { datefmt.SetLocation(nil) })
	deps, _, _, gen := newDeps(sample())
	uc := export.NewDateRangeExportUseCase(deps)

	res, err := uc.Export(context.Background(), "c1", dto.DateRangeExportRequest{StartDate: "2024-03-02", EndDate: "2024-03-05"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)

	r := gen.report
	assert.Equal(t, "Fechas: 02-03-24 a 05-03-24", r.Subtitle)
	assert.Equal(t, 1, r.Rows[0].Number)
	assert.Equal(t, "Sin monto", r.Rows[1].Item, "el día final es inclusivo")
}

func TestDateRangeExport_Validacion(t *testing.T) {
	deps, exp, _, _ := newDeps(sample())
	uc := export.NewDateRangeExportUseCase(deps)

	_, err := uc.Export(context.Background(), "c1", dto.DateRangeExportRequest{StartDate: "2024-03-02"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	_, err = uc.Export(context.Background(), "c1", dto.DateRangeExportRequest{StartDate: "2024-03-05", EndDate: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Zero(t, exp.calls)

	_, err = uc.Export(context.Background(), "c1", dto.DateRangeExportRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"})
	assert.ErrorIs(t, err, domain.ErrEmptyRange)
}
