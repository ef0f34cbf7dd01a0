// Package pdf genera el acta imprimible de una visita de servicio: orden de
// trabajo, datos de cliente y técnico, detalle de repuestos con totales y
// espacio de firmas.
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/ServiCampo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// impresora con separadores de miles es-CL para los montos en pesos.
var impresora = message.NewPrinter(language.MustParse("es-CL"))

func pesos(d decimal.Decimal) string {
	f, _ := d.Float64()
	return impresora.Sprintf("$ %.0f", f)
}

// ActaVisitaGenerator genera el PDF del acta de visita usando Maroto v2.
type ActaVisitaGenerator struct{}

// NewActaVisitaGenerator construye el generador.
func NewActaVisitaGenerator() *ActaVisitaGenerator { return &ActaVisitaGenerator{} }

// Generate genera el acta y devuelve sus bytes.
func (g *ActaVisitaGenerator) Generate(visita *entity.Visita) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de Visita "+visita.OrdenID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(visita))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(visita))
	m.AddRows(tecnicoRow(visita))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(diagnosticoRows(visita)...)

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(visita.Inventario) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(visita))

	m.AddRows(line.NewRow(3))
	m.AddRows(firmasRow(visita))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar acta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + número de orden (izq), visita y fecha (der).
func headerRow(v *entity.Visita) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ACTA DE VISITA DE SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Orden de trabajo: "+v.OrdenID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(v.Tipo, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(v.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+v.Fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func clienteRow(v *entity.Visita) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(v.ClienteNombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(v.ClienteDireccion, "—"),
				nonEmpty(v.ClienteTelefono, "—"),
				nonEmpty(v.ClienteEmail, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tecnicoRow(v *entity.Visita) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TÉCNICO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Entrada: %s   |   Salida: %s",
				v.TecnicoNombre,
				nonEmpty(v.HoraEntrada, "—"),
				nonEmpty(v.HoraSalida, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func diagnosticoRows(v *entity.Visita) []core.Row {
	if v.Diagnostico == "" {
		return nil
	}
	return []core.Row{
		row.New(14).Add(
			col.New(12).Add(
				text.New("DIAGNÓSTICO", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(v.Diagnostico, props.Text{Size: 8, Top: 6}),
			),
		),
	}
}

// tableHeaderRow: cabecera de la tabla de inventario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Repuesto / servicio", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func tableDetailRows(lineas []entity.LineaInventario) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Cantidad.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Item,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				pesos(l.PrecioUnit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				pesos(l.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal, IVA y total alineados a la derecha.
func totalsRow(v *entity.Visita) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3), // espacio izquierdo
		col.New(3).Add(
			label("Subtotal:"),
			label("IVA (19%):"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(pesos(v.Subtotal)),
			value(pesos(v.IVA)),
			grandValue(pesos(v.Total)),
		),
		col.New(3), // espacio derecho
	)
}

// firmasRow: constancia de conformidad del cliente y del técnico.
func firmasRow(v *entity.Visita) core.Row {
	estado := func(firma string) string {
		if firma == "" {
			return "pendiente de firma"
		}
		return "firmado digitalmente"
	}
	return row.New(20).Add(
		col.New(6).Add(
			text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 8}),
			text.New("Firma cliente ("+estado(v.FirmaCliente)+")", props.Text{
				Size: 8, Align: align.Center, Top: 14, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 8}),
			text.New("Firma técnico ("+estado(v.FirmaTecnico)+")", props.Text{
				Size: 8, Align: align.Center, Top: 14, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
