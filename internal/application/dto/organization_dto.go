package dto

// OrganizationForm campos del modal de organización.
type OrganizationForm struct {
	Name string `form:"name"`
}

// OrganizationRow organización lista para mostrar.
type OrganizationRow struct {
	Number    int
	ID        string
	Name      string
	CreatedAt string
}

// OrganizationDetail cabecera de la vista de detalle de una organización.
type OrganizationDetail struct {
	ID   string
	Name string
}
