package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Mensajes de validación de los modales.
const (
	MsgItemRequired     = "El item es obligatorio"
	MsgAmountPositive   = "El monto debe ser un número positivo"
	MsgCustomerRequired = "Seleccione un cliente"
	MsgNameRequired     = "El nombre es obligatorio"
	MsgDateInvalid      = "La fecha no es válida"
)

// ValidateExpenseForm valida el modal de gasto y construye la entidad a enviar.
// La fecha elegida (YYYY-MM-DD) se combina con la hora actual; sin fecha se usa now.
func ValidateExpenseForm(form dto.ExpenseForm, now time.Time) (*entity.Expense, error) {
	item := strings.TrimSpace(form.Item)
	if item == "" {
		return nil, invalid("item", MsgItemRequired)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil || !amount.IsPositive() {
		return nil, invalid("amount", MsgAmountPositive)
	}
	customerID := strings.TrimSpace(form.CustomerID)
	if customerID == "" {
		return nil, invalid("customer", MsgCustomerRequired)
	}
	date := now
	if d := strings.TrimSpace(form.Date); d != "" {
		day, err := time.ParseInLocation("2006-01-02", d, now.Location())
		if err != nil {
			return nil, invalid("date", MsgDateInvalid)
		}
		date = time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	}
	return &entity.Expense{
		Item:        item,
		Amount:      entity.NewAmount(amount),
		Description: strings.TrimSpace(form.Description),
		Date:        date.Format(time.RFC3339),
		Customer:    entity.Ref{ID: customerID},
	}, nil
}

// ValidateCustomerForm valida el modal de cliente.
func ValidateCustomerForm(form dto.CustomerForm) (*entity.Customer, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, invalid("name", MsgNameRequired)
	}
	return &entity.Customer{
		Name:         name,
		Organization: entity.Ref{ID: strings.TrimSpace(form.OrganizationID)},
	}, nil
}

// ValidateOrganizationForm valida el modal de organización.
func ValidateOrganizationForm(form dto.OrganizationForm) (*entity.Organization, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, invalid("name", MsgNameRequired)
	}
	return &entity.Organization{Name: name}, nil
}
