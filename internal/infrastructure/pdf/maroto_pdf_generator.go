// Package pdf implementa la representación imprimible de una cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Servicio + categoría  │  N° Cotización + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Email / País                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Valor                                    │
//	│    tier, complejidad, precio base, multiplicadores          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: precio ajustado + entrega estimada                  │
//	│  FOOTER: estado + vigencia (expires_at)                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/projecost-api/internal/application/quoting"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/pricing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ quoting.QuotePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa quoting.QuotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotePDF genera el PDF y devuelve sus bytes. Todos los valores se
// toman del snapshot de la cotización; nunca se recalcula el precio.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, quote *entity.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización Projecost", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range pricingRows(quote) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(quote))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(quote))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: servicio + categoría (izq) y número + fecha (der).
func headerRow(quote *entity.Quote) core.Row {
	fecha := quote.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(quote.ServiceName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Categoría: "+quote.ServiceCategory, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN DE PROYECTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(quote.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del solicitante.
func clientRow(quote *entity.Quote) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SOLICITANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(quote.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   País: %s",
				quote.ClientEmail, quote.ClientCountry,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de desglose.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 8, align.Left),
		h("Valor", 4, align.Right),
	)
}

// pricingRows: desglose del cálculo, leído del snapshot.
func pricingRows(quote *entity.Quote) []core.Row {
	cm, _ := pricing.ComplexityMultiplier(quote.Complexity)
	entry := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(value, props.Text{Size: 8, Align: align.Right, Top: 1})),
		)
	}
	return []core.Row{
		entry("Tier seleccionado", quote.SelectedTier),
		entry("Complejidad del proyecto", quote.Complexity),
		entry("Precio base del tier", quote.BasePrice.String()),
		entry("Multiplicador de país ("+quote.ClientCountry+")", quote.CountryMultiplier.String()),
		entry("Multiplicador de complejidad", cm.String()),
	}
}

// totalRow: precio ajustado y entrega estimada.
func totalRow(quote *entity.Quote) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Entrega estimada: %d días", quote.DeliveryTimeDays), props.Text{
				Size: 9, Top: 3, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("TOTAL: "+quote.AdjustedPrice.String(), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

// footerRow: estado actual y vigencia.
func footerRow(quote *entity.Quote) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Estado: %s   |   Válida hasta: %s",
				quote.Status, quote.ExpiresAt.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}
