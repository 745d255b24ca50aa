package dto_test

import (
	"testing"
	"time"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
	"github.com/stretchr/testify/assert"
)

func TestExpenseFilter_Params(t *testing.T) {
	f := dto.ExpenseFilter{Item: " café ", DatePreset: "week", Amount: "100", AmountOp: "gt", SortBy: "amount", SortOrder: "asc"}
	f.Normalize()

	assert.Equal(t, map[string]string{
		"item":       "café",
		"datePreset": "week",
		"amount":     "100",
		"amountOp":   "gt",
		"sortBy":     "amount",
		"sortOrder":  "asc",
	}, f.Params())
}

func TestExpenseFilter_NormalizeDescartaDesconocidos(t *testing.T) {
	f := dto.ExpenseFilter{DatePreset: "siglo", StartDate: "2024-01-01", AmountOp: "??", SortBy: "password", SortOrder: "x"}
	f.Normalize()

	assert.Equal(t, dto.DatePresetAll, f.DatePreset)
	assert.Empty(t, f.StartDate)
	assert.Equal(t, dto.AmountEq, f.AmountOp)
	assert.Empty(t, f.SortBy)
	assert.Empty(t, f.Params())
}

func TestExpenseFilter_Custom(t *testing.T) {
	f := dto.ExpenseFilter{DatePreset: "custom", StartDate: "2024-01-01", EndDate: "2024-01-31"}
	f.Normalize()

	assert.Equal(t, map[string]string{"startDate": "2024-01-01", "endDate": "2024-01-31"}, f.Params())
	assert.Contains(t, f.Query(), "datePreset=custom")
}

func TestExpenseFilter_Matches(t *testing.T) {
	datefmt.SetLocation(time.UTC)
	t.Cleanup(func() { datefmt.SetLocation(nil) })
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	e := entity.Expense{
		Item:     "Café molido",
		Amount:   entity.ParseAmount("150"),
		Date:     "2024-03-14T09:00:00Z",
		Customer: entity.Ref{ID: "c1", Name: "Ravi Traders"},
	}

	tests := []struct {
		name   string
		filter dto.ExpenseFilter
		want   bool
	}{
		{"sin filtros", dto.ExpenseFilter{}, true},
		{"item sin mayúsculas", dto.ExpenseFilter{Item: "café"}, true},
		{"item distinto", dto.ExpenseFilter{Item: "té"}, false},
		{"cliente", dto.ExpenseFilter{Customer: "ravi"}, true},
		{"ayer", dto.ExpenseFilter{DatePreset: "yesterday"}, true},
		{"hoy", dto.ExpenseFilter{DatePreset: "today"}, false},
		{"semana", dto.ExpenseFilter{DatePreset: "week"}, true},
		{"mes", dto.ExpenseFilter{DatePreset: "month"}, true},
		{"rango incluye fin", dto.ExpenseFilter{DatePreset: "custom", StartDate: "2024-03-01", EndDate: "2024-03-14"}, true},
		{"rango excluye", dto.ExpenseFilter{DatePreset: "custom", StartDate: "2024-03-15"}, false},
		{"importe igual", dto.ExpenseFilter{Amount: "150"}, true},
		{"importe mayor", dto.ExpenseFilter{Amount: "100", AmountOp: "gt"}, true},
		{"importe menor", dto.ExpenseFilter{Amount: "100", AmountOp: "lt"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter
			f.Normalize()
			assert.Equal(t, tt.want, f.Matches(e, now))
		})
	}
}
