package dto_test

import (
	"testing"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name              string
		total, size, page int
		wantPage, wantPgs int
	}{
		{"23 registros de 10 en 10", 23, 10, 1, 1, 3},
		{"página fuera de rango se ajusta", 23, 10, 4, 3, 3},
		{"página negativa", 23, 10, -2, 1, 3},
		{"exacto", 20, 10, 2, 2, 2},
		{"sin registros", 0, 10, 5, 1, 1},
		{"tamaño inválido", 3, 0, 2, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := dto.NewPagination(tt.total, tt.size, tt.page)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPgs, p.TotalPages)
		})
	}
}

func TestPagination_Navegacion(t *testing.T) {
	p := dto.NewPagination(23, 10, 3)
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Equal(t, 3, p.Next())
	assert.Equal(t, 2, p.Prev())
	assert.Equal(t, 21, p.FirstNumber())
	assert.Equal(t, []int{1, 2, 3}, p.Pages())
}

func TestEmptyPage(t *testing.T) {
	r := dto.EmptyPage[dto.ExpenseRow](10)
	assert.Empty(t, r.Records)
	assert.Equal(t, 0, r.Total)
	assert.Equal(t, 1, r.TotalPages)
	assert.True(t, r.TotalAmount.IsZero())
}
