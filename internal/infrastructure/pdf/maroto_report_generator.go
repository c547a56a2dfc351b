// Package pdf implementa los reportes en PDF con Maroto v2.
//
// Layout de la página A4 (ambos reportes):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización          │  Título + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: persona / resumen                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA(S): activos, licencias o ítems de inventario         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES + firma / leyenda                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

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
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/report"
	"github.com/jhoicas/asset-tracker/internal/domain/status"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ report.Generator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// CustodySheet genera la hoja de custodia de una persona.
func (g *MarotoReportGenerator) CustodySheet(
	_ context.Context,
	org *dto.OrganizationResponse,
	person *dto.PersonResponse,
	generatedAt time.Time,
) ([]byte, error) {
	m := maroto.New(newConfig("Hoja de custodia", org.Name))

	m.AddRows(headerRow(org, "HOJA DE CUSTODIA", generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(personRow(person))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle(fmt.Sprintf("Activos (%d)", len(person.Assets))))
	m.AddRows(assetHeaderRow())
	total := decimal.Zero
	for _, a := range person.Assets {
		m.AddRows(assetRow(a))
		total = total.Add(a.Value)
	}
	if len(person.Assets) == 0 {
		m.AddRows(emptyRow("Sin activos asignados"))
	}

	m.AddRows(sectionTitle(fmt.Sprintf("Licencias (%d)", len(person.Licenses))))
	m.AddRows(licenseHeaderRow())
	for _, l := range person.Licenses {
		m.AddRows(licenseRow(l, person.ID))
	}
	if len(person.Licenses) == 0 {
		m.AddRows(emptyRow("Sin licencias asignadas"))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("VALOR TOTAL EN CUSTODIA", total))
	m.AddRows(line.NewRow(12))
	m.AddRows(signatureRow(person.Name))

	return generate(m)
}

// InventoryReport genera el listado de inventario de la organización.
func (g *MarotoReportGenerator) InventoryReport(
	_ context.Context,
	org *dto.OrganizationResponse,
	items []dto.InventoryItemResponse,
	generatedAt time.Time,
) ([]byte, error) {
	m := maroto.New(newConfig("Reporte de inventario", org.Name))

	m.AddRows(headerRow(org, "REPORTE DE INVENTARIO", generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	total := decimal.Zero
	restock := 0
	for _, it := range items {
		total = total.Add(it.TotalValue)
		if it.Status != status.StockAvailable {
			restock++
		}
	}
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Ítems: %d   ·   Requieren reposición: %d", len(items), restock), props.Text{
			Size: 9, Top: 2, Color: colorGray,
		}),
	)))

	m.AddRows(inventoryHeaderRow())
	for _, it := range items {
		m.AddRows(inventoryRow(it))
	}
	if len(items) == 0 {
		m.AddRows(emptyRow("Sin ítems de inventario"))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("VALOR TOTAL DEL INVENTARIO", total))

	return generate(m)
}

func newConfig(title, author string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: organización (izq) y título + fecha (der).
func headerRow(org *dto.OrganizationResponse, title string, at time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(org.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(org.Description, " "), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func personRow(p *dto.PersonResponse) core.Row {
	team := nonEmpty(p.TeamName, "Sin equipo")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("RESPONSABLE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(p.Email, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(nonEmpty(p.Position, "-"), props.Text{Size: 9, Align: align.Right, Top: 6}),
			text.New(team, props.Text{Size: 8, Align: align.Right, Top: 11, Color: colorGray}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

func headerCell(size int, label string, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1}))
}

func cell(size int, value string, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
}

func assetHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(4, "Activo", align.Left),
		headerCell(2, "Tipo", align.Left),
		headerCell(3, "N° de serie", align.Left),
		headerCell(1, "Estado", align.Left),
		headerCell(2, "Valor", align.Right),
	)
}

func assetRow(a dto.AssetResponse) core.Row {
	return row.New(6).Add(
		cell(4, a.Name, align.Left),
		cell(2, a.Type, align.Left),
		cell(3, nonEmpty(a.SerialNumber, "-"), align.Left),
		cell(1, a.Condition, align.Left),
		cell(2, formatMoney(a.Value), align.Right),
	)
}

func licenseHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(4, "Licencia", align.Left),
		headerCell(2, "Proveedor", align.Left),
		headerCell(3, "Código", align.Left),
		headerCell(3, "Vencimiento", align.Right),
	)
}

// licenseRow muestra el código individual de la persona o, si no tiene, el código general.
func licenseRow(l dto.LicenseResponse, personID string) core.Row {
	code := l.IndividualCodes[personID]
	if code == "" {
		code = l.LicenseCode
	}
	expiry := props.Text{Size: 8, Align: align.Right, Top: 1}
	if l.Status != status.LicenseActive {
		expiry.Color = colorAlert
	}
	return row.New(6).Add(
		cell(4, l.Name, align.Left),
		cell(2, nonEmpty(l.Vendor, "-"), align.Left),
		cell(3, nonEmpty(code, "-"), align.Left),
		col.New(3).Add(text.New(formatDate(l.ExpirationDate), expiry)),
	)
}

func inventoryHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(3, "Ítem", align.Left),
		headerCell(2, "Categoría", align.Left),
		headerCell(2, "Ubicación", align.Left),
		headerCell(1, "Cant.", align.Right),
		headerCell(1, "Mín.", align.Right),
		headerCell(1, "Estado", align.Left),
		headerCell(2, "Total", align.Right),
	)
}

func inventoryRow(it dto.InventoryItemResponse) core.Row {
	st := props.Text{Size: 8, Top: 1}
	if it.Status != status.StockAvailable {
		st.Color = colorAlert
	}
	return row.New(6).Add(
		cell(3, it.Name, align.Left),
		cell(2, nonEmpty(it.Category, "-"), align.Left),
		cell(2, nonEmpty(it.Location, "-"), align.Left),
		cell(1, strconv.Itoa(it.Quantity), align.Right),
		cell(1, strconv.Itoa(it.MinQuantity), align.Right),
		col.New(1).Add(text.New(stockLabel(it.Status), st)),
		cell(2, formatMoney(it.TotalValue), align.Right),
	)
}

func totalRow(label string, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func signatureRow(name string) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("______________________________", props.Text{Size: 9, Top: 2}),
			text.New(name, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Declaro haber recibido los bienes listados y me comprometo a su cuidado.", props.Text{
				Size: 7, Top: 4, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func stockLabel(s string) string {
	switch s {
	case status.StockOutOfStock:
		return "Agotado"
	case status.StockLow:
		return "Bajo"
	}
	return "OK"
}

// formatDate muestra la fecha como dd/mm/aaaa; si no se reconoce la deja igual.
func formatDate(s string) string {
	t, ok := status.ParseDate(s)
	if !ok {
		return nonEmpty(s, "-")
	}
	return t.Format("02/01/2006")
}

// formatMoney formatea con dos decimales, punto de miles y coma decimal.
// Ej: 25000 → "$ 25.000,00", -1234.5 → "-$ 1.234,50"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + "$ " + string(buf) + "," + frac
}
