// Package invitation renders the personal invitation card attendees show
// at the entry desk. The QR code carries the registration code so the
// desk can look the registration up without typing.
package invitation

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/spirit-symposium/event-registration/registration"
)

const eventTitle = "SPIRIT 2k26"

func Write(w io.Writer, reg registration.Registration) error {
	qrPNG, err := qrcode.Encode(reg.RegistrationID, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encoding qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle(fmt.Sprintf("%s invitation %s", eventTitle, reg.RegistrationID), true)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 14, eventTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "National Level Technical Symposium", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, reg.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, reg.College, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Courier", "B", 16)
	pdf.CellFormat(0, 9, reg.RegistrationID, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	qrSize := 50.0
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", (pageWidth-qrSize)/2, pdf.GetY(), qrSize, qrSize, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + qrSize + 4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Events: "+strings.Join(reg.Events, ", "), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Present this card with a college ID at the registration desk.", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}
