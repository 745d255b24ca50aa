package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ListQuery página (1-based), tamaño y filtros que se envían tal cual como query string.
type ListQuery struct {
	Page    int
	Limit   int
	Filters map[string]string
}

// Page resultado de un listado tal como lo reporta el backend.
// TotalAmount solo viene en los listados de gastos.
type Page[T any] struct {
	Items       []T
	Total       int
	TotalAmount decimal.Decimal
}

type accessTokenKey struct{}

// WithAccessToken adjunta al contexto el token del backend del usuario de la sesión.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken devuelve el token adjunto con WithAccessToken.
func AccessToken(ctx context.Context) string {
	s, _ := ctx.Value(accessTokenKey{}).(string)
	return s
}
