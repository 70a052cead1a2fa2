package dto

import "time"

// Tipos de evento de la línea de trayectoria de un usmya.
const (
	EventoAsistencia = "asistencia"
	EventoNota       = "nota"
)

// EventoTrayectoria es una entrada de la línea de tiempo: una asistencia a
// actividad o una nota de trayectoria, fusionadas y ordenadas de la más
// reciente a la más antigua.
type EventoTrayectoria struct {
	Tipo        string    `json:"tipo"` // asistencia | nota
	Titulo      string    `json:"titulo"`
	Detalle     string    `json:"detalle,omitempty"`
	Fecha       string    `json:"fecha"`
	Hora        string    `json:"hora,omitempty"`
	Momento     time.Time `json:"-"`
	IDActividad int       `json:"idActividad,omitempty"`
	IDNota      int       `json:"idNota,omitempty"`
}

// ContadoresPendientes agrupa los usuarios pendientes de aprobación por rol
// para los badges de notificación del panel de administración. Agentes y
// efectores comparten balde.
type ContadoresPendientes struct {
	AgentesYEfectores int `json:"agentesYEfectores"`
	Referentes        int `json:"referentes"`
	Usmyas            int `json:"usmyas"`
	Total             int `json:"total"`
}
