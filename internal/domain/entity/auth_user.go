package entity

// AuthUser guarda las credenciales de acceso. Es una colección separada de
// usuarios: no todo Usuario puede iniciar sesión.
type AuthUser struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"` // bcrypt, nunca texto plano
	Rol          string `json:"rol"`
	IDUsuario    int    `json:"idUsuario"`
	IDEspacio    int    `json:"idEspacio,omitempty"`
}
