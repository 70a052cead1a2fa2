package entity

import "time"

// NotaTrayectoria es una observación libre sobre la trayectoria de un
// usmya, escrita por cualquier actor del sistema.
type NotaTrayectoria struct {
	ID          int    `json:"id"`
	IDUsmya     int    `json:"idUsmya"`
	IDAutor     int    `json:"idAutor"`
	Titulo      string `json:"titulo"`
	Observacion string `json:"observacion"`
	Fecha       string `json:"fecha"` // AAAA-MM-DD
	Hora        string `json:"hora"`  // HH:MM
}

// Momento interpreta fecha y hora como un instante para la línea de tiempo.
func (n NotaTrayectoria) Momento() time.Time {
	t, err := time.Parse("2006-01-02T15:04", n.Fecha+"T"+n.Hora)
	if err != nil {
		return time.Time{}
	}
	return t
}
