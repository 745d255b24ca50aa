package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/pkg/jwt"
)

// SessionCookie nombre de la cookie con la sesión firmada.
const SessionCookie = "gastos_session"

// LocalUser key de Locals con el dto.CurrentUser.
const LocalUser = "current_user"

// sessionParser contrato mínimo que necesita el middleware. Lo implementa *usecase.AuthUseCase.
type sessionParser interface {
	Session(token string) (*jwt.Session, error)
}

// SessionMiddleware valida la cookie de sesión, deja el usuario en Locals y el token
// del backend en el contexto de la petición. Sin sesión redirige a /login
// (con HX-Redirect si la petición viene de htmx).
func SessionMiddleware(sessions sessionParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return redirectToLogin(c)
		}
		s, err := sessions.Session(token)
		if err != nil {
			clearSession(c)
			return redirectToLogin(c)
		}
		c.Locals(LocalUser, dto.CurrentUser{ID: s.UserID, Name: s.Name, Email: s.Email})
		c.SetUserContext(repository.WithAccessToken(c.UserContext(), s.APIToken))
		return c.Next()
	}
}

// GetCurrentUser devuelve el usuario de la sesión (después del middleware).
func GetCurrentUser(c *fiber.Ctx) dto.CurrentUser {
	u, _ := c.Locals(LocalUser).(dto.CurrentUser)
	return u
}

func redirectToLogin(c *fiber.Ctx) error {
	if IsHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func setSession(c *fiber.Ctx, token string, expMinutes int, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(expMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
