package receipt

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
)

const (
	fontFamily = "Helvetica"
	qrImage    = "receipt-qr"
	qrSide     = 20.0
	qrTop      = 6.0
)

// documentDate is stamped into every PDF so that identical input gives identical bytes.
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type pdfRenderer struct {
	geometry  Geometry
	qr        service.QRCodeService
	qrEnabled bool
	logger    *slog.Logger
}

// NewRenderer creates the fpdf backed receipt renderer. qr may be nil when QR codes are disabled.
func NewRenderer(cfg *config.Config, qr service.QRCodeService, logger *slog.Logger) service.ReceiptRenderer {
	return &pdfRenderer{
		geometry:  A4(),
		qr:        qr,
		qrEnabled: cfg.Receipt.QRCode && qr != nil,
		logger:    logger,
	}
}

func (r *pdfRenderer) Render(title string, fields []entity.ReceiptField) ([]byte, error) {
	return r.render(Layout(title, fields, r.geometry), nil)
}

func (r *pdfRenderer) RenderWithLink(title string, fields []entity.ReceiptField, link string) ([]byte, error) {
	doc := Layout(title, fields, r.geometry)
	if !r.qrEnabled || link == "" {
		return r.render(doc, nil)
	}

	png, err := r.qr.Encode(link)
	if err != nil {
		// Fall back to a receipt without the QR code.
		r.logger.Warn("Failed to encode receipt QR code", slog.String("link", link), slog.Any("error", err))

		return r.render(doc, nil)
	}

	return r.render(doc, png)
}

func (r *pdfRenderer) render(doc *Document, qrPNG []byte) ([]byte, error) {
	g := doc.Geometry

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, g.Margin)
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("tenant-portal", true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, page := range doc.Pages {
		pdf.AddPage()

		if i == 0 && qrPNG != nil {
			opts := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader(qrImage, opts, bytes.NewReader(qrPNG))
			pdf.ImageOptions(qrImage, g.PageWidth-g.Margin-qrSide, qrTop, qrSide, qrSide, false, opts, 0, "")
		}

		for _, line := range page.Lines {
			if line.Title {
				pdf.SetFont(fontFamily, "B", g.TitleFontSize)
			} else {
				pdf.SetFont(fontFamily, "", g.BodyFontSize)
			}
			pdf.Text(line.X, line.Y, tr(line.Text))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrapf(err, "failed to render receipt %q", doc.Title)
	}

	return buf.Bytes(), nil
}
