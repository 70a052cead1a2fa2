package entity

// Estados del ciclo de vida de una Actividad. Nace pendiente salvo que la
// cree el agente de su propio Espacio, en cuyo caso queda aprobada.
const (
	ActividadPendiente = "pendiente"
	ActividadAprobada  = "aprobada"
	ActividadRechazada = "rechazada"
)

// Actividad es un evento puntual o recurrente ofrecido por un Espacio.
type Actividad struct {
	ID          int    `json:"id"`
	UUID        string `json:"uuid,omitempty"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"` // AAAA-MM-DD
	HoraInicio  string `json:"horaInicio"`
	HoraFin     string `json:"horaFin"`
	Responsable string `json:"responsable"`
	Lugar       string `json:"lugar"`
	EsFija      bool   `json:"esFija"` // actividad recurrente de agenda fija
	Estado      string `json:"estado"` // pendiente | aprobada | rechazada
	IDEspacio   int    `json:"idEspacio"`
}
