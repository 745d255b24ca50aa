package entity

import "time"

// Customer representa un cliente; puede pertenecer a una organización.
type Customer struct {
	ID           string
	Name         string
	Organization Ref // vacía si el cliente no tiene organización
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref devuelve la referencia corta usada por Expense.
func (c Customer) Ref() Ref {
	return Ref{ID: c.ID, Name: c.Name}
}
