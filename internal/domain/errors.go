package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Las búsquedas que no encuentran un recurso devuelven (nil, nil); estos
// errores se reservan para violaciones de reglas de negocio y para
// operaciones que el contrato del backend real no soporta.
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrMiembroDuplicado      = errors.New("el usuario ya es integrante del chat")
	ErrNoSoportado           = errors.New("operación no soportada por el contrato actual")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrRolInmutable          = errors.New("el rol de un usuario no puede modificarse")
	ErrNoIntegrante          = errors.New("el usuario no es integrante del chat")
	ErrEntradaInvalida       = errors.New("entrada inválida")
)
