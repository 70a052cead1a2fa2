package entity

// Estados de una Asistencia.
const (
	AsistenciaPresente = "presente"
	AsistenciaAusente  = "ausente"
)

// Asistencia registra la presencia de un usuario en una actividad.
// Se espera una fila por par (actividad, usuario).
type Asistencia struct {
	ID          int    `json:"id"`
	IDActividad int    `json:"idActividad"`
	IDUser      int    `json:"idUser"`
	Estado      string `json:"estado"` // presente | ausente
	Observacion string `json:"observacion,omitempty"`
}
