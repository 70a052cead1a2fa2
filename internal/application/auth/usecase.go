// Package auth implementa el login local: verifica credenciales con bcrypt
// y emite un JWT propio. Es el autenticador del modo mock; el modo vivo
// delega en el endpoint de login del backend.
package auth

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

var _ ports.Autenticador = (*AuthUseCase)(nil)

// AuthUseCase caso de uso de autenticación sobre el set de credenciales.
type AuthUseCase struct {
	credenciales ports.CredencialService
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(credenciales ports.CredencialService, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{credenciales: credenciales, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + sesión. Un
// email inexistente y una contraseña incorrecta producen el mismo error
// para no filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	cred, err := uc.credenciales.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, cred.IDUsuario, cred.Email, cred.Rol, cred.IDEspacio, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Sesion: dto.SesionResponse{
			ID:        cred.IDUsuario,
			Email:     cred.Email,
			Rol:       cred.Rol,
			IDEspacio: cred.IDEspacio,
		},
	}, nil
}
