package entity

import "time"

// Mensaje pertenece a exactamente un Chat. El orden cronológico se deriva
// de la concatenación fecha + "T" + hora; los empates conservan el orden
// de inserción (orden estable).
type Mensaje struct {
	ID       int    `json:"id"`
	IDChat   int    `json:"idChat"`
	IDEmisor int    `json:"idEmisor"`
	Texto    string `json:"texto"`
	Fecha    string `json:"fecha"` // AAAA-MM-DD
	Hora     string `json:"hora"`  // HH:MM
}

// Momento interpreta fecha y hora como un instante. Si el par no parsea,
// devuelve el instante cero, que ordena antes que cualquier fecha válida.
func (m Mensaje) Momento() time.Time {
	t, err := time.Parse("2006-01-02T15:04", m.Fecha+"T"+m.Hora)
	if err != nil {
		return time.Time{}
	}
	return t
}
