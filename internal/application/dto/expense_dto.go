package dto

import (
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
	"github.com/shopspring/decimal"
)

// Presets de fecha del filtro de gastos.
const (
	DatePresetAll       = "all"
	DatePresetToday     = "today"
	DatePresetYesterday = "yesterday"
	DatePresetWeek      = "week"
	DatePresetMonth     = "month"
	DatePresetCustom    = "custom"
)

// Comparadores del filtro de importe.
const (
	AmountEq = "eq"
	AmountGt = "gt"
	AmountLt = "lt"
)

// ExpenseFilter filtros de la pantalla de gastos (query string).
type ExpenseFilter struct {
	Item       string `query:"item"`
	Customer   string `query:"customer"`
	DatePreset string `query:"datePreset"`
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
	Amount     string `query:"amount"`
	AmountOp   string `query:"amountOp"`
	SortBy     string `query:"sortBy"`
	SortOrder  string `query:"sortOrder"`
}

var sortable = map[string]bool{"date": true, "amount": true, "item": true, "createdAt": true}

// Normalize recorta espacios y descarta valores desconocidos.
func (f *ExpenseFilter) Normalize() {
	f.Item = strings.TrimSpace(f.Item)
	f.Customer = strings.TrimSpace(f.Customer)
	f.Amount = strings.TrimSpace(f.Amount)
	switch f.DatePreset {
	case DatePresetToday, DatePresetYesterday, DatePresetWeek, DatePresetMonth, DatePresetCustom:
	default:
		f.DatePreset = DatePresetAll
	}
	if f.DatePreset != DatePresetCustom {
		f.StartDate, f.EndDate = "", ""
	}
	switch f.AmountOp {
	case AmountGt, AmountLt:
	default:
		f.AmountOp = AmountEq
	}
	if !sortable[f.SortBy] {
		f.SortBy = ""
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
}

// Params parámetros que se envían al backend además de page y limit.
func (f ExpenseFilter) Params() map[string]string {
	p := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			p[k] = v
		}
	}
	set("item", f.Item)
	set("customer", f.Customer)
	if f.DatePreset == DatePresetCustom {
		set("startDate", f.StartDate)
		set("endDate", f.EndDate)
	} else if f.DatePreset != DatePresetAll {
		set("datePreset", f.DatePreset)
	}
	if f.Amount != "" {
		set("amount", f.Amount)
		set("amountOp", f.AmountOp)
	}
	if f.SortBy != "" {
		set("sortBy", f.SortBy)
		set("sortOrder", f.SortOrder)
	}
	return p
}

// Query codifica el filtro para enlaces de paginación y recargas parciales.
func (f ExpenseFilter) Query() string {
	v := url.Values{}
	for k, s := range f.Params() {
		v.Set(k, s)
	}
	if f.DatePreset == DatePresetCustom {
		v.Set("datePreset", DatePresetCustom)
	}
	return v.Encode()
}

// Matches filtro adicional sobre la página ya recibida. No recalcula el total del backend.
func (f ExpenseFilter) Matches(e entity.Expense, now time.Time) bool {
	if f.Item != "" && !containsFold(e.Item, f.Item) {
		return false
	}
	if f.Customer != "" && !containsFold(e.Customer.Label(), f.Customer) {
		return false
	}
	if !f.matchesDate(e, now) {
		return false
	}
	return f.matchesAmount(e)
}

func (f ExpenseFilter) matchesDate(e entity.Expense, now time.Time) bool {
	if f.DatePreset == DatePresetAll || f.DatePreset == "" {
		return true
	}
	d, ok := datefmt.Parse(e.Date)
	if !ok {
		return false
	}
	loc := datefmt.Location()
	now = now.In(loc)
	today := startOfDay(now)
	switch f.DatePreset {
	case DatePresetToday:
		return sameDay(d, today)
	case DatePresetYesterday:
		return sameDay(d, today.AddDate(0, 0, -1))
	case DatePresetWeek:
		return !d.Before(now.Add(-7 * 24 * time.Hour))
	case DatePresetMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case DatePresetCustom:
		if s, ok := datefmt.Parse(f.StartDate); ok && d.Before(startOfDay(s)) {
			return false
		}
		if end, ok := datefmt.Parse(f.EndDate); ok && !d.Before(startOfDay(end).AddDate(0, 0, 1)) {
			return false
		}
		return true
	}
	return true
}

func (f ExpenseFilter) matchesAmount(e entity.Expense) bool {
	if f.Amount == "" {
		return true
	}
	want, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return true
	}
	got := e.Amount.Decimal()
	switch f.AmountOp {
	case AmountGt:
		return got.GreaterThan(want)
	case AmountLt:
		return got.LessThan(want)
	default:
		return got.Equal(want)
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ExpenseRow gasto listo para mostrar en tablas.
type ExpenseRow struct {
	Number       int
	ID           string
	Item         string
	Amount       string
	Description  string
	Date         string // DD-MM-YY
	DateInput    string // YYYY-MM-DD para el formulario de edición
	CustomerID   string
	CustomerName string
	CreatedAt    string // DD-MM-YY HH:MM
}

// ExpenseForm campos del modal de alta/edición de gasto.
type ExpenseForm struct {
	Item        string `form:"item"`
	Amount      string `form:"amount"`
	Description string `form:"description"`
	Date        string `form:"date"` // YYYY-MM-DD
	CustomerID  string `form:"customer"`
}

// ExpenseTotalResponse agregado de gastos.
type ExpenseTotalResponse struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}
