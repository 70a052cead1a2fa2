package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SesionResponse datos de sesión que viajan junto al token. Replica el
// contenido del token: {id, email, role, idEspacio}.
type SesionResponse struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Rol       string `json:"role"`
	IDEspacio int    `json:"idEspacio,omitempty"`
}

// LoginResponse salida con token JWT y la sesión asociada.
type LoginResponse struct {
	Token  string         `json:"token"`
	Sesion SesionResponse `json:"sesion"`
}
