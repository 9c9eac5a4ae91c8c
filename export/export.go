// Package export renders registration listings as CSV or PDF for the
// admin dashboard download buttons.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/spirit-symposium/event-registration/registration"
)

var columns = []string{
	"Reg ID",
	"Name",
	"College",
	"Department",
	"Year",
	"Gender",
	"Phone",
	"Email",
	"Events",
	"Payment",
	"Date",
}

func row(reg registration.Registration) []string {
	return []string{
		reg.RegistrationID,
		reg.Name,
		reg.College,
		reg.Department,
		reg.Year,
		string(reg.Gender),
		reg.Phone,
		reg.Email,
		strings.Join(reg.Events, ", "),
		string(reg.PaymentStatus),
		reg.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func WriteCSV(w io.Writer, regs []registration.Registration) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, reg := range regs {
		if err := cw.Write(row(reg)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// colWidths are tuned by eye for an A4 landscape page.
var colWidths = []float64{22, 30, 38, 22, 12, 16, 24, 42, 44, 20, 27}

func WritePDF(w io.Writer, title string, regs []registration.Registration) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, col := range columns {
			pdf.CellFormat(colWidths[i], 7, col, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	writeHeader()

	pdf.SetFont("Helvetica", "", 7)
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()

	for _, reg := range regs {
		if pdf.GetY() > pageHeight-bottom-10 {
			pdf.AddPage()
			writeHeader()
			pdf.SetFont("Helvetica", "", 7)
		}
		for i, cell := range row(reg) {
			pdf.CellFormat(colWidths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
