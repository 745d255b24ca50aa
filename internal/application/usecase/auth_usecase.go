package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/pkg/jwt"
)

// SessionConfig configuración de la cookie de sesión firmada.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login y logout contra el backend. La consola solo guarda el token del
// backend dentro de su propia sesión firmada.
type AuthUseCase struct {
	gateway repository.AuthGateway
	cfg     SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway repository.AuthGateway, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, cfg: cfg}
}

// Login verifica credenciales en el backend y firma la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, invalid("email", "Ingrese email y contraseña")
	}
	apiToken, user, err := uc.gateway.Login(ctx, email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("auth: login: %w", err)
	}
	session := jwt.Session{UserID: user.ID, Name: user.DisplayName(), Email: user.Email, APIToken: apiToken}
	token, err := jwt.Generate(uc.cfg.Secret, session, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: firmar sesión: %w", err)
	}
	return &dto.LoginResult{
		SessionToken: token,
		User:         dto.CurrentUser{ID: user.ID, Name: session.Name, Email: user.Email},
		ExpiresInMin: uc.cfg.ExpMinutes,
	}, nil
}

// Session valida la cookie y devuelve la sesión.
func (uc *AuthUseCase) Session(token string) (*jwt.Session, error) {
	return jwt.Parse(uc.cfg.Secret, token)
}

// Logout avisa al backend; la cookie se borra siempre en la capa HTTP.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if repository.AccessToken(ctx) == "" {
		return nil
	}
	return uc.gateway.Logout(ctx)
}
