package entity

import "time"

// Organization agrupa clientes; el backend es dueño del registro.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref devuelve la referencia corta usada por Customer.
func (o Organization) Ref() Ref {
	return Ref{ID: o.ID, Name: o.Name}
}
