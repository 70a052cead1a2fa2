package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
)

// TrayectoriaUseCase arma la línea de tiempo de un usmya fusionando sus
// asistencias a actividades con sus notas de trayectoria.
type TrayectoriaUseCase struct {
	asistencias ports.AsistenciaService
	actividades ports.ActividadService
	notas       ports.NotaTrayectoriaService
}

// NewTrayectoriaUseCase construye el caso de uso.
func NewTrayectoriaUseCase(asistencias ports.AsistenciaService, actividades ports.ActividadService, notas ports.NotaTrayectoriaService) *TrayectoriaUseCase {
	return &TrayectoriaUseCase{asistencias: asistencias, actividades: actividades, notas: notas}
}

// Timeline devuelve los eventos del usmya de más reciente a más antiguo.
// Las asistencias toman fecha y hora de su actividad; una actividad ya
// borrada deja el evento con el detalle mínimo.
func (uc *TrayectoriaUseCase) Timeline(ctx context.Context, idUsmya int) ([]dto.EventoTrayectoria, error) {
	asistencias, err := uc.asistencias.ListByUsuario(ctx, idUsmya)
	if err != nil {
		return nil, err
	}
	notas, err := uc.notas.ListByUsmya(ctx, idUsmya)
	if err != nil {
		return nil, err
	}

	eventos := make([]dto.EventoTrayectoria, 0, len(asistencias)+len(notas))
	for _, a := range asistencias {
		ev := dto.EventoTrayectoria{
			Tipo:        dto.EventoAsistencia,
			Titulo:      "Asistencia a actividad",
			Detalle:     a.Estado,
			IDActividad: a.IDActividad,
		}
		if act, err := uc.actividades.GetByID(ctx, a.IDActividad); err != nil {
			return nil, err
		} else if act != nil {
			ev.Titulo = act.Nombre
			ev.Fecha = act.Fecha
			ev.Hora = act.HoraInicio
			ev.Momento = momentoDe(act.Fecha, act.HoraInicio)
		}
		eventos = append(eventos, ev)
	}
	for _, n := range notas {
		eventos = append(eventos, dto.EventoTrayectoria{
			Tipo:    dto.EventoNota,
			Titulo:  n.Titulo,
			Detalle: n.Observacion,
			Fecha:   n.Fecha,
			Hora:    n.Hora,
			Momento: n.Momento(),
			IDNota:  n.ID,
		})
	}

	// Más reciente primero; los empates conservan asistencias antes que
	// notas por construcción del slice.
	sort.SliceStable(eventos, func(i, j int) bool {
		return eventos[i].Momento.After(eventos[j].Momento)
	})
	return eventos, nil
}

func momentoDe(fecha, hora string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", fecha+"T"+hora)
	if err != nil {
		return time.Time{}
	}
	return t
}
