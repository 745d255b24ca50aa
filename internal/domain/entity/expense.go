package entity

import "time"

// Expense gasto registrado para un cliente.
// Date conserva el valor que envía el backend (ISO o texto ya formateado).
type Expense struct {
	ID          string
	Item        string
	Amount      Amount
	Description string
	Date        string
	Customer    Ref
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseTotal agregado de gastos (opcionalmente por organización).
type ExpenseTotal struct {
	Total Amount
	Count int
}
