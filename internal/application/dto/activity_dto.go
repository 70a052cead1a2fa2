package dto

import (
	"strconv"
	"strings"

	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// ActivityDTO es la forma wire de una Actividad. La fecha y la hora de
// inicio viajan combinadas en assignmentDate (ISO); los nationalId del
// responsable y del espacio exigen el default "0".
type ActivityDTO struct {
	UUID                string  `json:"uuid,omitempty"`
	Name                *string `json:"name"`
	Description         *string `json:"description"`
	AssignmentDate      string  `json:"assignmentDate"`
	EndTime             *string `json:"endTime"`
	Assignee            *string `json:"assignee"`
	AssigneeNationalID  *string `json:"assigneeNationalId"`
	WorkspaceNationalID *string `json:"workspaceNationalId"`
	Place               *string `json:"place"`
	IsFixed             bool    `json:"isFixed"`
	Status              string  `json:"status"`
	WorkspaceID         *int    `json:"workspaceId,omitempty"`
}

// CombinarFechaHora arma el timestamp ISO assignmentDate. Una fecha que ya
// contiene 'T' se considera combinada y pasa sin tocar; la hora ausente
// defaultea a "00:00".
func CombinarFechaHora(fecha, hora string) string {
	if fecha == "" {
		return ""
	}
	if strings.Contains(fecha, "T") {
		return fecha
	}
	if hora == "" {
		hora = "00:00"
	}
	return fecha + "T" + hora
}

// SepararFechaHora invierte CombinarFechaHora cortando en la primera 'T'.
func SepararFechaHora(iso string) (fecha, hora string) {
	antes, despues, ok := strings.Cut(iso, "T")
	if !ok {
		return iso, ""
	}
	if len(despues) > 5 {
		despues = despues[:5]
	}
	return antes, despues
}

// ToActivityDTO mapea una Actividad a la forma wire. El dominio no guarda
// los documentos del responsable ni del espacio; viajan con el default "0"
// que el contrato exige.
func ToActivityDTO(a entity.Actividad) ActivityDTO {
	cero := "0"
	d := ActivityDTO{
		UUID:                a.UUID,
		Name:                Texto(a.Nombre),
		Description:         Texto(a.Descripcion),
		AssignmentDate:      CombinarFechaHora(a.Fecha, a.HoraInicio),
		EndTime:             Texto(a.HoraFin),
		Assignee:            Texto(a.Responsable),
		AssigneeNationalID:  &cero,
		WorkspaceNationalID: &cero,
		Place:               Texto(a.Lugar),
		IsFixed:             a.EsFija,
		Status:              CanonicalizarEstadoActividad(a.Estado),
	}
	if a.IDEspacio != 0 {
		id := a.IDEspacio
		d.WorkspaceID = &id
	}
	return d
}

// FromActivityDTO mapea la forma wire al dominio.
func FromActivityDTO(d ActivityDTO) entity.Actividad {
	a := entity.Actividad{
		UUID:        d.UUID,
		Nombre:      Valor(d.Name),
		Descripcion: Valor(d.Description),
		HoraFin:     Valor(d.EndTime),
		Responsable: Valor(d.Assignee),
		Lugar:       Valor(d.Place),
		EsFija:      d.IsFixed,
		Estado:      desCanonicalizar(activityStatusMap, d.Status),
	}
	a.Fecha, a.HoraInicio = SepararFechaHora(d.AssignmentDate)
	if d.WorkspaceID != nil {
		a.IDEspacio = *d.WorkspaceID
	}
	if n, err := strconv.Atoi(d.UUID); err == nil {
		a.ID = n
	}
	return a
}
