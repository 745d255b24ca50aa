package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ParseRange convierte los campos del modal. Max vacío = sin máximo conocido; un Max
// que no es un entero no negativo se rechaza como el resto de campos.
func ParseRange(req dto.RangeExportRequest) (start, end, maxIndex int, err error) {
	if start, err = strconv.Atoi(strings.TrimSpace(req.Start)); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: el inicio debe ser un número entero", domain.ErrInvalidRange)
	}
	if end, err = strconv.Atoi(strings.TrimSpace(req.End)); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: el fin debe ser un número entero", domain.ErrInvalidRange)
	}
	if m := strings.TrimSpace(req.Max); m != "" {
		if maxIndex, err = strconv.Atoi(m); err != nil || maxIndex < 0 {
			return 0, 0, 0, fmt.Errorf("%w: el total de registros no es válido", domain.ErrInvalidRange)
		}
	}
	return start, end, maxIndex, nil
}

// ValidateRange comprueba un rango 1-based inclusivo: start >= 1, end >= start y,
// si se conoce el máximo (maxIndex > 0), end <= maxIndex.
func ValidateRange(start, end, maxIndex int) error {
	if start < 1 {
		return fmt.Errorf("%w: el inicio debe ser al menos 1", domain.ErrInvalidRange)
	}
	if end < start {
		return fmt.Errorf("%w: el fin debe ser mayor o igual que el inicio", domain.ErrInvalidRange)
	}
	if maxIndex > 0 && end > maxIndex {
		return fmt.Errorf("%w: el fin no puede superar %d", domain.ErrInvalidRange, maxIndex)
	}
	return nil
}

// SelectRange devuelve all[start-1 : min(end, len(all))] en el orden original.
// Un inicio fuera de la lista devuelve vacío.
func SelectRange[T any](all []T, start, end int) []T {
	if start < 1 || end < start || start > len(all) {
		return nil
	}
	if end > len(all) {
		end = len(all)
	}
	return all[start-1 : end]
}

// TotalAmount suma los importes; los ausentes o no numéricos cuentan como cero.
func TotalAmount(records []entity.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range records {
		sum = sum.Add(e.Amount.Decimal())
	}
	return sum
}
