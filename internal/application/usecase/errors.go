package usecase

import (
	"errors"

	"github.com/jhoicas/gastos-admin/internal/domain"
)

// ValidationError error de formulario detectado antes de llamar al backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// userMessager lo implementan los errores que traen un mensaje apto para el usuario
// (por ejemplo el "message" que devuelve el backend).
type userMessager interface {
	UserMessage() string
}

// UserMessage elige el texto que se muestra en la notificación: el de validación,
// el del servidor si existe, o fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	switch {
	case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrEmptyRange):
		return err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return "La sesión expiró, vuelva a iniciar sesión"
	case errors.Is(err, domain.ErrNotFound):
		return "El registro ya no existe"
	}
	return fallback
}
