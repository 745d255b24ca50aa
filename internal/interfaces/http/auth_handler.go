package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/application/usecase"
	"github.com/jhoicas/gastos-admin/internal/domain"
)

// AuthHandler login y logout de la consola.
type AuthHandler struct {
	base
	uc           *usecase.AuthUseCase
	secureCookie bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *usecase.AuthUseCase, secureCookie bool, b base) *AuthHandler {
	return &AuthHandler{base: b, uc: uc, secureCookie: secureCookie}
}

// LoginPage GET /login. Con una sesión válida va directo a los gastos.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if token := c.Cookies(SessionCookie); token != "" {
		if _, err := h.uc.Session(token); err == nil {
			return c.Redirect("/expenses", fiber.StatusSeeOther)
		}
	}
	return h.views.Render(c, "login", fiber.Map{"Title": "Iniciar sesión", "Email": ""})
}

// Login godoc
// @Summary      Iniciar sesión en la consola
// @Description  Verifica las credenciales contra el backend y deja la sesión firmada en la cookie gastos_session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.CurrentUser
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	wantsJSON := c.Is("json")
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil && wantsJSON {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.loginFailed(c, in, err, wantsJSON)
	}
	setSession(c, out.SessionToken, out.ExpiresInMin, h.secureCookie)
	h.log.Info().Str("user_id", out.User.ID).Msg("sesión iniciada")
	if wantsJSON {
		return c.JSON(out.User)
	}
	if IsHTMX(c) {
		c.Set("HX-Redirect", "/expenses")
		return c.SendString("")
	}
	return c.Redirect("/expenses", fiber.StatusSeeOther)
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, in dto.LoginRequest, err error, wantsJSON bool) error {
	var ve *usecase.ValidationError
	msg := usecase.UserMessage(err, "No se pudo iniciar sesión")
	status := fiber.StatusBadGateway
	switch {
	case errors.As(err, &ve):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusUnauthorized
		msg = usecase.UserMessage(err, "Credenciales inválidas")
	default:
		h.log.Warn().Err(err).Msg("login fallido")
	}
	if wantsJSON {
		return c.Status(status).JSON(dto.ErrorResponse{Code: "LOGIN_FAILED", Message: msg})
	}
	return h.views.Render(c, "login", fiber.Map{"Title": "Iniciar sesión", "Email": in.Email, "Error": msg})
}

// Logout POST /logout. La cookie se borra aunque el backend falle.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext()); err != nil {
		h.log.Warn().Err(err).Msg("logout en el backend fallido")
	}
	clearSession(c)
	if IsHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendString("")
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
