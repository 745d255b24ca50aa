package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
)

// DateRangeExportUseCase PDF de los gastos de un cliente entre dos fechas (días completos).
type DateRangeExportUseCase struct {
	deps Deps
	now  func() time.Time
}

// NewDateRangeExportUseCase construye el caso de uso.
func NewDateRangeExportUseCase(deps Deps) *DateRangeExportUseCase {
	return &DateRangeExportUseCase{deps: deps, now: time.Now}
}

// ParseDateRange valida las dos fechas (YYYY-MM-DD) y devuelve [desde, hasta+1día).
func ParseDateRange(req dto.DateRangeExportRequest) (from, to time.Time, err error) {
	s, e := strings.TrimSpace(req.StartDate), strings.TrimSpace(req.EndDate)
	if s == "" || e == "" {
		return from, to, fmt.Errorf("%w: seleccione fecha inicial y final", domain.ErrInvalidRange)
	}
	loc := datefmt.Location()
	if from, err = time.ParseInLocation("2006-01-02", s, loc); err != nil {
		return from, to, fmt.Errorf("%w: fecha inicial inválida", domain.ErrInvalidRange)
	}
	last, err := time.ParseInLocation("2006-01-02", e, loc)
	if err != nil {
		return from, to, fmt.Errorf("%w: fecha final inválida", domain.ErrInvalidRange)
	}
	if last.Before(from) {
		return from, to, fmt.Errorf("%w: la fecha final debe ser igual o posterior a la inicial", domain.ErrInvalidRange)
	}
	return from, last.AddDate(0, 0, 1), nil
}

// Export filtra la colección completa del cliente por fecha y genera el PDF numerado desde 1.
func (uc *DateRangeExportUseCase) Export(ctx context.Context, customerID string, req dto.DateRangeExportRequest) (*dto.ExportResult, error) {
	from, to, err := ParseDateRange(req)
	if err != nil {
		return nil, err
	}

	all, name, err := fetchAll(ctx, uc.deps, customerID)
	if err != nil {
		return nil, err
	}

	selected := make([]entity.Expense, 0, len(all))
	for _, e := range all {
		d, ok := datefmt.Parse(e.Date)
		if ok && !d.Before(from) && d.Before(to) {
			selected = append(selected, e)
		}
	}
	if len(selected) == 0 {
		return nil, domain.ErrEmptyRange
	}

	subtitle := fmt.Sprintf("Fechas: %s a %s", datefmt.FormatDate(from), datefmt.FormatDate(to.AddDate(0, 0, -1)))
	report := buildReport(uc.deps.Money, name, subtitle, selected, 1, uc.now())
	pdfBytes, err := uc.deps.Generator.GenerateExpenseReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("export: generación fallida: %w", err)
	}
	return &dto.ExportResult{
		Content:  pdfBytes,
		Filename: fmt.Sprintf("gastos_%s_%s_%s.pdf", slug(name), from.Format("20060102"), to.AddDate(0, 0, -1).Format("20060102")),
		Rows:     len(selected),
	}, nil
}
