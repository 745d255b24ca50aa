package repository

import (
	"context"

	"github.com/jhoicas/gastos-admin/internal/domain/entity"
)

// AuthGateway colaborador de login/logout del backend.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, user *entity.User, err error)
	Logout(ctx context.Context) error
}
