package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/application/usecase"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
	"github.com/jhoicas/gastos-admin/pkg/logger"
)

// base dependencias que comparten todos los handlers de vistas.
type base struct {
	views *Views
	log   *logger.Logger
}

// page datos comunes de una página completa.
func (b base) page(c *fiber.Ctx, title, active string) fiber.Map {
	return fiber.Map{
		"Title":  title,
		"Active": active,
		"User":   GetCurrentUser(c),
	}
}

// failed degrada ante un error del backend: sesión vencida manda a /login, el resto
// se informa con una notificación y la vista sigue con lo que tenga.
func (b base) failed(c *fiber.Ctx, err error, fallback string) (*HTMXResponse, bool) {
	if errors.Is(err, domain.ErrUnauthorized) {
		clearSession(c)
		return nil, true
	}
	b.log.Warn().Err(err).Str("path", c.Path()).Msg("petición al backend fallida")
	return NewHTMXResponse().Error(usecase.UserMessage(err, fallback)), false
}

// renderPartial renderiza un parcial con la notificación de error si la hubo.
func (b base) renderPartial(c *fiber.Ctx, name string, data fiber.Map, err error, fallback string) error {
	if err != nil {
		resp, expired := b.failed(c, err, fallback)
		if expired {
			return redirectToLogin(c)
		}
		resp.Apply(c)
	}
	return b.views.Render(c, name, data)
}

// renderPage renderiza una página completa; el error queda visible en el aviso de la cabecera.
func (b base) renderPage(c *fiber.Ctx, name string, data fiber.Map, err error, fallback string) error {
	if err != nil {
		if _, expired := b.failed(c, err, fallback); expired {
			return redirectToLogin(c)
		}
		data["Error"] = usecase.UserMessage(err, fallback)
	}
	return b.views.Render(c, name, data)
}

// modalFailed vuelve a mostrar el modal con el mensaje y los campos cargados.
// Responde 200 para que htmx haga el swap.
func (b base) modalFailed(c *fiber.Ctx, name string, data fiber.Map, err error, fallback string) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		clearSession(c)
		return redirectToLogin(c)
	}
	var ve *usecase.ValidationError
	if !errors.As(err, &ve) {
		b.log.Warn().Err(err).Str("path", c.Path()).Msg("escritura en el backend fallida")
	}
	data["Error"] = usecase.UserMessage(err, fallback)
	return b.views.Render(c, name, data)
}

// badForm vuelve a mostrar el modal cuando el cuerpo no se pudo interpretar.
func (b base) badForm(c *fiber.Ctx, name string, data fiber.Map, err error) error {
	b.log.Debug().Err(err).Str("path", c.Path()).Msg("formulario inválido")
	data["Error"] = "Formulario inválido"
	return b.views.Render(c, name, data)
}

// confirmed la eliminación solo procede con confirm=yes. htmx envía los parámetros
// de DELETE en la query; los POST los traen en el cuerpo.
func confirmed(c *fiber.Ctx) bool {
	v := c.Query("confirm")
	if v == "" {
		v = c.FormValue("confirm")
	}
	return v == "yes"
}

// pageParam página pedida en la query; valores ausentes o inválidos dan la primera.
func pageParam(c *fiber.Ctx) int {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		req.Page = 1
	}
	req.DefaultPage()
	return req.Page
}

func today() string {
	return time.Now().In(datefmt.Location()).Format("2006-01-02")
}
