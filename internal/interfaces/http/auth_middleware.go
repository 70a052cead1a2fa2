package http

import (
	"strings"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

// Locals keys para los datos de sesión en Fiber.
const (
	LocalUserID    = "user_id"
	LocalRol       = "rol"
	LocalIDEspacio = "id_espacio"
)

// AuthMiddleware valida el Bearer Token JWT y extrae la sesión a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRol, claims.Role)
		c.Locals(LocalIDEspacio, claims.IDEspacio)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol de la sesión no está en la lista.
// Se monta después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		for _, r := range roles {
			if rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetUserID devuelve el id de usuario de la sesión (0 si no hay sesión).
func GetUserID(c *fiber.Ctx) int {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}

// GetRol devuelve el rol de la sesión.
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetIDEspacio devuelve el espacio asociado a la sesión (0 si no aplica).
func GetIDEspacio(c *fiber.Ctx) int {
	v := c.Locals(LocalIDEspacio)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}
