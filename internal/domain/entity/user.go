package entity

// User usuario autenticado contra el backend. La consola solo conoce lo que devuelve el login.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// DisplayName nombre a mostrar en la barra de navegación.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
