// Package export renders notebooks into other formats for printing and
// sharing. Currently the only target is PDF.
package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/notebookx/notebookx"
	"github.com/notebookx/notebookx/internal/logging"
)

// PDF renders the notebook to w as a PDF document with one PDF page per
// notebook page. The layout mirrors the page capacity model: US Letter
// with 1" margins.
func PDF(n *notebookx.Notebook, w io.Writer) error {
	logging.Debug("Render PDF for notebook %q", n.ID)
	pdf := setupPDF(n)

	for _, p := range n.Pages {
		renderPage(pdf, p)
	}

	return pdf.Output(w)
}

func setupPDF(n *notebookx.Notebook) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	pageSize := "Letter"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(72, 72, 72) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetProducer("notebookx", true)

	pdf.SetTitle(n.Title, true)
	modified := n.Modified.UTC()
	pdf.SetModificationDate(modified)
	pdf.SetCreationDate(n.Created.UTC())

	pdf.SetFooterFunc(func() {
		pdf.SetY(-48)
		pdf.SetFont("helvetica", "", 8)
		pdf.SetTextColor(127, 127, 127)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v", pdf.PageNo(), n.Title)
	})

	return pdf
}

func renderPage(pdf *gofpdf.Fpdf, p *notebookx.Page) {
	pdf.AddPage()

	pdf.SetFont("helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 16, p.Title, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("helvetica", "", 10)
	pdf.MultiCell(0, 13, p.Content, "", "L", false)
}
