package dto

// EstadisticasAsistencia resume la asistencia de una actividad. Con total
// cero, el porcentaje es 0 (nunca NaN ni infinito).
type EstadisticasAsistencia struct {
	Total                int     `json:"total"`
	Presentes            int     `json:"presentes"`
	Ausentes             int     `json:"ausentes"`
	PorcentajeAsistencia float64 `json:"porcentajeAsistencia"`
}

// RegistroAsistencia es una fila del alta masiva de asistencias para una
// actividad. Se procesa en el orden de entrada con semántica de upsert.
type RegistroAsistencia struct {
	IDUser      int    `json:"idUser"`
	Estado      string `json:"estado"` // presente | ausente
	Observacion string `json:"observacion,omitempty"`
}
