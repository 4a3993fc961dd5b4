package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/pkg/jwt"
)

// Config configuración del login administrativo y de los tokens.
type Config struct {
	Secret            string
	ExpMinutes        int
	Issuer            string
	AdminUser         string
	AdminPasswordHash string // bcrypt
}

// AuthUseCase emite tokens para el operador administrador.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login verifica usuario/password contra el hash bcrypt configurado y genera el JWT.
// Sin secret o sin hash configurado el login queda deshabilitado (ErrUnauthorized).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	if uc.cfg.Secret == "" || uc.cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("%w: login deshabilitado", domain.ErrUnauthorized)
	}
	if in.User != uc.cfg.AdminUser {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(in.User)
}

func (uc *AuthUseCase) issue(subject string) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.cfg.Secret, subject, jwt.RoleAdmin, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, ExpiresIn: uc.cfg.ExpMinutes * 60}, nil
}

// HashPassword genera el valor para ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password vacío", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
