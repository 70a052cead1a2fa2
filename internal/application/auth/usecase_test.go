package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/application/auth"
	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
	"github.com/comunidar/comunidad-api/pkg/jwt"
)

func nuevoAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := mock.NewStore()
	store.Retardo = 0
	return auth.NewAuthUseCase(mock.NewCredencialService(store), auth.JWTConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 60,
		Issuer:     "comunidad-api-test",
	})
}

func TestLogin_Exitoso(t *testing.T) {
	uc := nuevoAuth(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "marta.agente@comunidad.org", Password: "comunidad123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotEmpty(t, resp.Token)

	assert.Equal(t, 2, resp.Sesion.ID)
	assert.Equal(t, entity.RolAgente, resp.Sesion.Rol)
	assert.Equal(t, 1, resp.Sesion.IDEspacio)

	// El token replica la sesión.
	claims, err := jwt.Parse("secreto-de-test", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.UserID)
	assert.Equal(t, "marta.agente@comunidad.org", claims.Email)
	assert.Equal(t, entity.RolAgente, claims.Role)
	assert.Equal(t, 1, claims.IDEspacio)
}

func TestLogin_EmailSinDistinguirMayusculas(t *testing.T) {
	uc := nuevoAuth(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "Admin@Comunidad.org", Password: "comunidad123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolAdmin, resp.Sesion.Rol)
}

// Email inexistente y contraseña incorrecta devuelven el mismo error: la
// respuesta no revela qué cuentas existen.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := nuevoAuth(t)
	ctx := context.Background()

	_, errNoExiste := uc.Login(ctx, dto.LoginRequest{
		Email: "nadie@comunidad.org", Password: "comunidad123",
	})
	_, errPassword := uc.Login(ctx, dto.LoginRequest{
		Email: "admin@comunidad.org", Password: "incorrecta",
	})

	assert.ErrorIs(t, errNoExiste, domain.ErrCredencialesInvalidas)
	assert.ErrorIs(t, errPassword, domain.ErrCredencialesInvalidas)
	assert.Equal(t, errNoExiste, errPassword)
}
