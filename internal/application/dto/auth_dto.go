package dto

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// LoginResult sesión firmada lista para la cookie.
type LoginResult struct {
	SessionToken string
	User         CurrentUser
	ExpiresInMin int
}

// CurrentUser lo único que las vistas conocen del usuario.
type CurrentUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
