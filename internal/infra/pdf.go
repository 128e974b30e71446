package infra

// pdf.go — Sale receipt generation using go-pdf/fpdf.
// Produces a compact receipt with the dealership header, folio and date,
// the vehicle sold, customer and payment details, and a bold total.
// The output file is saved to storagePath/recibo_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"concesionaria/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReciboPDF renders the PDF receipt for a Venta. The venta must carry
// its Vehiculo reference preloaded. storagePath is the directory where the PDF
// will be written (created if needed). Returns the path to the generated file.
func GenerateReciboPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", venta.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper (custom size, "A7" is not in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Concesionaria", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Sale info ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	folio := venta.Folio
	if folio == "" {
		folio = venta.ID.String()[:8]
	}
	pdf.CellFormat(contentW, 5, "Folio "+folio, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.FechaVenta.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Vehicle ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW, 5, "Vehiculo", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	if venta.Vehiculo != nil {
		descripcion := venta.Vehiculo.Marca + " " + venta.Vehiculo.Modelo
		if len(descripcion) > 34 {
			descripcion = descripcion[:33] + "…"
		}
		pdf.CellFormat(contentW, 5, descripcion, "", 1, "L", false, 0, "")
		if venta.Vehiculo.NumeroSerie != "" {
			pdf.CellFormat(contentW, 4, "Serie: "+venta.Vehiculo.NumeroSerie, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(2)

	// ── Customer ──────────────────────────────────────────────────────────────
	if venta.ClienteNombre != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW, 4, "Cliente: "+venta.ClienteNombre, "", 1, "L", false, 0, "")
	}
	if venta.ClienteTelefono != "" {
		pdf.CellFormat(contentW, 4, "Tel: "+venta.ClienteTelefono, "", 1, "L", false, 0, "")
	}
	if venta.Empleado != nil {
		pdf.CellFormat(contentW, 4, "Atendido por: "+venta.Empleado.Nombre+" "+venta.Empleado.Apellido, "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ─────────────────────────────────────────────────────────────────
	col1 := contentW * 0.55
	col2 := contentW * 0.45

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if venta.MetodoPago != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(col1, 4, "Metodo de pago:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, venta.MetodoPago, "", 1, "R", false, 0, "")
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
