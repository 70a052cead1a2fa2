// Package pdf implementa la generación de la planilla de asistencia de una
// actividad usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la actividad  │  Fecha + horario          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESPACIO: nombre, tipo, dirección                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | DNI | Estado | Observación                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: presentes / ausentes / total                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.GeneradorPDF = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.GeneradorPDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// PlanillaAsistencia genera el PDF y devuelve sus bytes. espacio puede ser
// nil si el de la actividad ya no existe.
func (g *MarotoPDFGenerator) PlanillaAsistencia(actividad entity.Actividad, espacio *entity.Espacio, filas []ports.FilaAsistencia) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Planilla de asistencia", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(actividad))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if espacio != nil {
		m.AddRows(espacioRow(*espacio))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, f := range filas {
		m.AddRows(filaRow(f))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(resumenRow(filas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la actividad (izq) y fecha + horario (der).
func headerRow(a entity.Actividad) core.Row {
	horario := a.Fecha
	if a.HoraInicio != "" {
		horario = fmt.Sprintf("%s · %s-%s", a.Fecha, a.HoraInicio, a.HoraFin)
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(a.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(a.Responsable, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(horario, props.Text{
				Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(a.Lugar, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func espacioRow(e entity.Espacio) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Espacio: %s (%s)", e.Nombre, e.Tipo), props.Text{
				Size: 9, Top: 1,
			}),
			text.New(e.Direccion, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(4).Add(text.New("Nombre y apellido", estilo)),
		col.New(2).Add(text.New("DNI", estilo)),
		col.New(2).Add(text.New("Estado", estilo)),
		col.New(4).Add(text.New("Observación", estilo)),
	)
}

func filaRow(f ports.FilaAsistencia) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(f.NombreCompleto, props.Text{Size: 9, Top: 1})),
		col.New(2).Add(text.New(f.DNI, props.Text{Size: 9, Top: 1})),
		col.New(2).Add(text.New(f.Estado, props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New(f.Observacion, props.Text{Size: 8, Top: 1, Color: colorGray})),
	)
}

func resumenRow(filas []ports.FilaAsistencia) core.Row {
	presentes := 0
	for _, f := range filas {
		if f.Estado == entity.AsistenciaPresente {
			presentes++
		}
	}
	resumen := fmt.Sprintf("Presentes: %d · Ausentes: %d · Total: %d",
		presentes, len(filas)-presentes, len(filas))
	return row.New(8).Add(
		col.New(12).Add(text.New(resumen, props.Text{
			Size: 9, Align: align.Right, Top: 2, Style: fontstyle.Bold,
		})),
	)
}
