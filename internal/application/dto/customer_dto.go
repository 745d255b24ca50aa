package dto

import (
	"net/url"
	"strings"
)

// CustomerForm campos del modal de cliente.
type CustomerForm struct {
	Name           string `form:"name"`
	OrganizationID string `form:"organization"`
}

// CustomerRow cliente listo para mostrar.
type CustomerRow struct {
	Number           int
	ID               string
	Name             string
	OrganizationID   string
	OrganizationName string
	CreatedAt        string
}

// CustomerDetail cabecera de la vista de detalle de un cliente.
type CustomerDetail struct {
	ID               string
	Name             string
	OrganizationID   string
	OrganizationName string
}

// NameFilter búsqueda por nombre de clientes y organizaciones.
type NameFilter struct {
	NameSearch string `query:"nameSearch"`
}

// Params parámetros para el backend.
func (f NameFilter) Params() map[string]string {
	search := strings.TrimSpace(f.NameSearch)
	if search == "" {
		return nil
	}
	return map[string]string{"nameSearch": search}
}

// Query codifica la búsqueda para enlaces de paginación y recargas parciales.
func (f NameFilter) Query() string {
	v := url.Values{}
	for k, s := range f.Params() {
		v.Set(k, s)
	}
	return v.Encode()
}
