// Package invoice renders order invoices as PDF documents.
package invoice

import (
	"bytes"
	"fmt"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jung-kurt/gofpdf"
)

const pageBreakY = 260.0

// RenderPDF produces the invoice document: a header block, the
// customer/payment/shipping summary, the line-item table (wrapping to a new
// page when one fills) and the totals block.
func RenderPDF(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SS Food Products")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice for Order #%d", inv.OrderID))
	pdf.Ln(6)
	pdf.Cell(0, 8, "Date: "+inv.OrderDate.Format("02 Jan 2006 15:04"))
	pdf.Ln(12)

	// Customer / payment / shipping summary
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(95, 7, "Billed To")
	pdf.Cell(95, 7, "Shipping Address")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)

	left := []string{
		inv.CustomerName,
		inv.CustomerEmail,
		inv.CustomerPhone,
		"Payment: " + inv.PaymentMethod,
		"Method: " + inv.OrderMethod,
	}
	right := []string{
		inv.Address.Street,
		inv.Address.City + ", " + inv.Address.State,
		inv.Address.PostalCode,
		inv.Address.Country,
	}
	for i := 0; i < len(left) || i < len(right); i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		pdf.Cell(95, 6, l)
		pdf.Cell(95, 6, r)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Line items
	drawTableHeader(pdf)
	for i, it := range inv.Items {
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
			drawTableHeader(pdf)
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(90, 7, it.ProductName, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", it.PriceAtPurchase), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", it.Subtotal), "1", 1, "R", fill, 0, "")
	}

	// Totals
	if pdf.GetY() > pageBreakY-30 {
		pdf.AddPage()
	}
	pdf.Ln(4)
	drawTotalRow(pdf, "Subtotal", totals.Subtotal, false)
	drawTotalRow(pdf, "Shipping", totals.Shipping, false)
	drawTotalRow(pdf, "Tax", totals.Tax, false)
	drawTotalRow(pdf, "Total", totals.GrandTotal, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func drawTotalRow(pdf *gofpdf.Fpdf, label string, amount float64, bold bool) {
	if bold {
		pdf.SetFont("Helvetica", "B", 11)
	} else {
		pdf.SetFont("Helvetica", "", 10)
	}
	pdf.Cell(150, 7, "")
	pdf.CellFormat(15, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
}
