package usecase

import (
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
)

func toExpenseRow(number int, e entity.Expense) dto.ExpenseRow {
	row := dto.ExpenseRow{
		Number:       number,
		ID:           e.ID,
		Item:         e.Item,
		Amount:       e.Amount.String(),
		Description:  e.Description,
		Date:         datefmt.FormatDate(e.Date),
		CustomerID:   e.Customer.ID,
		CustomerName: e.Customer.Label(),
		CreatedAt:    datefmt.FormatDateTime(e.CreatedAt),
	}
	if t, ok := datefmt.Parse(e.Date); ok {
		row.DateInput = t.Format("2006-01-02")
	}
	return row
}

func toCustomerRow(number int, c entity.Customer) dto.CustomerRow {
	return dto.CustomerRow{
		Number:           number,
		ID:               c.ID,
		Name:             c.Name,
		OrganizationID:   c.Organization.ID,
		OrganizationName: c.Organization.Label(),
		CreatedAt:        datefmt.FormatDate(c.CreatedAt),
	}
}

func toOrganizationRow(number int, o entity.Organization) dto.OrganizationRow {
	return dto.OrganizationRow{
		Number:    number,
		ID:        o.ID,
		Name:      o.Name,
		CreatedAt: datefmt.FormatDate(o.CreatedAt),
	}
}
