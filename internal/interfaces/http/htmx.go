package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// Eventos que la consola dispara vía HX-Trigger.
const (
	EventNotification = "show-notification"
	EventModalClose   = "modal:close"
	EventListRefresh  = "list:refresh"
	EventTotalRefresh = "total:refresh"
	EventOpenDocument = "open-document"
)

// NotificationType tipo de notificación que muestra app.js.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// HTMXResponse acumula los eventos HX-Trigger de una respuesta.
type HTMXResponse struct {
	triggers map[string]any
}

// NewHTMXResponse respuesta sin eventos.
func NewHTMXResponse() *HTMXResponse {
	return &HTMXResponse{triggers: make(map[string]any)}
}

// Trigger agrega un evento con su detalle.
func (r *HTMXResponse) Trigger(name string, detail any) *HTMXResponse {
	r.triggers[name] = detail
	return r
}

// Notify notificación con duración según el tipo.
func (r *HTMXResponse) Notify(kind NotificationType, message string) *HTMXResponse {
	duration := 3000
	if kind == NotificationError {
		duration = 5000
	}
	return r.Trigger(EventNotification, map[string]any{
		"type":     string(kind),
		"message":  message,
		"duration": duration,
	})
}

// Success notificación de éxito.
func (r *HTMXResponse) Success(message string) *HTMXResponse {
	return r.Notify(NotificationSuccess, message)
}

// Error notificación de error.
func (r *HTMXResponse) Error(message string) *HTMXResponse {
	return r.Notify(NotificationError, message)
}

// CloseModal cierra el modal abierto.
func (r *HTMXResponse) CloseModal() *HTMXResponse {
	return r.Trigger(EventModalClose, struct{}{})
}

// RefreshList pide a la vista que vuelva a pedir su tabla.
func (r *HTMXResponse) RefreshList() *HTMXResponse {
	return r.Trigger(EventListRefresh, struct{}{})
}

// RefreshTotal pide a la vista que vuelva a pedir el total agregado.
func (r *HTMXResponse) RefreshTotal() *HTMXResponse {
	return r.Trigger(EventTotalRefresh, struct{}{})
}

// OpenDocument abre el documento en una pestaña nueva.
func (r *HTMXResponse) OpenDocument(url string) *HTMXResponse {
	return r.Trigger(EventOpenDocument, map[string]string{"url": url})
}

// Apply escribe la cabecera HX-Trigger.
func (r *HTMXResponse) Apply(c *fiber.Ctx) {
	if len(r.triggers) == 0 {
		return
	}
	b, err := json.Marshal(r.triggers)
	if err != nil {
		return
	}
	c.Set("HX-Trigger", string(b))
}

// Send aplica los eventos y responde 200 sin cuerpo.
func (r *HTMXResponse) Send(c *fiber.Ctx) error {
	r.Apply(c)
	return c.Status(fiber.StatusOK).SendString("")
}

// IsHTMX indica si la petición la hizo htmx.
func IsHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
