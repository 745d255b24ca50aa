package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
)

var _ repository.AuthGateway = (*AuthGateway)(nil)

// AuthGateway login/logout del backend.
type AuthGateway struct {
	c *Client
}

// NewAuthGateway construye el gateway.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

// Login POST /auth/login → {token, user}.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	var resp loginResponse
	in := map[string]string{"email": email, "password": password}
	if err := g.c.do(ctx, http.MethodPost, "/auth/login", nil, in, &resp); err != nil {
		return "", nil, err
	}
	if resp.Token == "" {
		return "", nil, fmt.Errorf("%w: login sin token", domain.ErrUpstream)
	}
	u := resp.User
	return resp.Token, &entity.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// Logout POST /auth/logout con el token de la sesión.
func (g *AuthGateway) Logout(ctx context.Context) error {
	return g.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
