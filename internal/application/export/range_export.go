package export

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
	"github.com/jhoicas/gastos-admin/pkg/money"
)

// Deps dependencias compartidas por las exportaciones.
type Deps struct {
	Expenses   repository.ExpenseRepository
	Customers  repository.CustomerRepository
	Generator  ReportGenerator
	Money      *money.Formatter
	FetchLimit int
}

// RangeExportUseCase PDF de los gastos de un cliente entre dos posiciones del listado.
type RangeExportUseCase struct {
	deps Deps
	now  func() time.Time
}

// NewRangeExportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewRangeExportUseCase(deps Deps) *RangeExportUseCase {
	return &RangeExportUseCase{deps: deps, now: time.Now}
}

// Export valida el rango antes de pedir nada, trae la colección completa del cliente
// (no la página visible), toma el tramo pedido y genera el PDF.
//
// Retorna:
//   - domain.ErrInvalidRange si el rango no es válido (sin llamadas al backend).
//   - domain.ErrEmptyRange   si el tramo no tiene registros (no se genera documento).
func (uc *RangeExportUseCase) Export(ctx context.Context, customerID string, req dto.RangeExportRequest) (*dto.ExportResult, error) {
	// ── 1. Validar rango ──────────────────────────────────────────────────────
	start, end, maxIndex, err := ParseRange(req)
	if err != nil {
		return nil, err
	}
	if err := ValidateRange(start, end, maxIndex); err != nil {
		return nil, err
	}

	// ── 2. Colección completa del cliente ────────────────────────────────────
	all, name, err := fetchAll(ctx, uc.deps, customerID)
	if err != nil {
		return nil, err
	}

	// ── 3. Tramo ─────────────────────────────────────────────────────────────
	selected := SelectRange(all, start, end)
	if len(selected) == 0 {
		return nil, domain.ErrEmptyRange
	}

	// ── 4. Generar PDF ────────────────────────────────────────────────────────
	report := buildReport(uc.deps.Money, name, fmt.Sprintf("Gastos: %d a %d", start, end), selected, start, uc.now())
	pdfBytes, err := uc.deps.Generator.GenerateExpenseReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("export: generación fallida: %w", err)
	}
	return &dto.ExportResult{
		Content:  pdfBytes,
		Filename: fmt.Sprintf("gastos_%s_%d-%d.pdf", slug(name), start, end),
		Rows:     len(selected),
	}, nil
}

func fetchAll(ctx context.Context, deps Deps, customerID string) ([]entity.Expense, string, error) {
	name := "Cliente"
	if c, err := deps.Customers.GetByID(ctx, customerID); err == nil && c != nil && c.Name != "" {
		name = c.Name
	}
	page, err := deps.Expenses.ListByCustomer(ctx, customerID, repository.ListQuery{Page: 1, Limit: deps.FetchLimit})
	if err != nil {
		return nil, "", fmt.Errorf("export: obtener gastos: %w", err)
	}
	return page.Items, name, nil
}

func buildReport(m *money.Formatter, customer, subtitle string, rows []entity.Expense, firstNumber int, now time.Time) *Report {
	r := &Report{
		Title:       "Gastos de " + customer,
		Subtitle:    subtitle,
		TotalLabel:  "Total: " + m.WithCurrency(TotalAmount(rows)),
		Rows:        make([]ReportRow, 0, len(rows)),
		GeneratedAt: now,
	}
	for i, e := range rows {
		r.Rows = append(r.Rows, ReportRow{
			Number:      firstNumber + i,
			Item:        e.Item,
			Date:        datefmt.FormatDate(e.Date),
			Description: e.Description,
			Amount:      m.Amount(e.Amount.Decimal()),
		})
	}
	return r
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	out := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "_"), "_")
	if out == "" {
		return "cliente"
	}
	return out
}
