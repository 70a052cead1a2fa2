package usecase

import (
	"context"
	"fmt"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/metrics"
)

// ReporteUseCase produce la planilla de asistencia en PDF de una
// actividad: resuelve actividad, espacio y asistentes, y delega el
// dibujado en el generador.
type ReporteUseCase struct {
	actividades ports.ActividadService
	espacios    ports.EspacioService
	asistencias ports.AsistenciaService
	usuarios    ports.UsuarioService
	generador   ports.GeneradorPDF
	collector   *metrics.Collector
}

// NewReporteUseCase construye el caso de uso. collector puede ser nil.
func NewReporteUseCase(actividades ports.ActividadService, espacios ports.EspacioService, asistencias ports.AsistenciaService, usuarios ports.UsuarioService, generador ports.GeneradorPDF, collector *metrics.Collector) *ReporteUseCase {
	return &ReporteUseCase{
		actividades: actividades,
		espacios:    espacios,
		asistencias: asistencias,
		usuarios:    usuarios,
		generador:   generador,
		collector:   collector,
	}
}

// PDFAsistencias genera la planilla de la actividad. Un asistente cuyo
// usuario ya no existe igual ocupa su fila, con los datos que haya.
func (uc *ReporteUseCase) PDFAsistencias(ctx context.Context, idActividad int) ([]byte, error) {
	actividad, err := uc.actividades.GetByID(ctx, idActividad)
	if err != nil {
		return nil, err
	}
	if actividad == nil {
		return nil, domain.ErrNotFound
	}
	espacio, err := uc.espacios.GetByID(ctx, actividad.IDEspacio)
	if err != nil {
		return nil, err
	}
	asistencias, err := uc.asistencias.ListByActividad(ctx, idActividad)
	if err != nil {
		return nil, err
	}

	filas := make([]ports.FilaAsistencia, 0, len(asistencias))
	for _, a := range asistencias {
		fila := ports.FilaAsistencia{
			NombreCompleto: fmt.Sprintf("usuario %d", a.IDUser),
			Estado:         a.Estado,
			Observacion:    a.Observacion,
		}
		if u, err := uc.usuarios.GetByID(ctx, a.IDUser); err != nil {
			return nil, err
		} else if u != nil {
			fila.NombreCompleto = u.NombreCompleto()
			fila.DNI = u.DNI
		}
		filas = append(filas, fila)
	}

	pdf, err := uc.generador.PlanillaAsistencia(*actividad, espacio, filas)
	if err != nil {
		return nil, err
	}
	if uc.collector != nil {
		uc.collector.RecordPDFGenerated()
	}
	return pdf, nil
}
