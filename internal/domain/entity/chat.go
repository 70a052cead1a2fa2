package entity

// Tipos de chat. El par (IDUsmya, Tipo) identifica la conversación.
const (
	ChatGeneral  = "general"
	ChatTratante = "tratante"
)

// Chat es una conversación centrada en un usmya. La unicidad del par
// (IDUsmya, Tipo) se controla al momento de crear, no como restricción dura.
type Chat struct {
	ID      int    `json:"id"`
	IDUsmya int    `json:"idUsmya"`
	Tipo    string `json:"tipo"` // general | tratante
}

// IntegranteChat vincula a un usuario con un chat. A lo sumo una membresía
// por par (chat, usuario); el servicio rechaza duplicados.
type IntegranteChat struct {
	ID     int `json:"id"`
	IDChat int `json:"idChat"`
	IDUser int `json:"idUser"`
}
