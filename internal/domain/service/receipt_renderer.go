package service

import "portal/internal/domain/entity"

// ReceiptRenderer turns a title and ordered fields into a PDF document.
// Identical input must yield identical bytes.
type ReceiptRenderer interface {
	Render(title string, fields []entity.ReceiptField) ([]byte, error)

	// RenderWithLink adds a QR code pointing at link on the first page, when enabled.
	RenderWithLink(title string, fields []entity.ReceiptField, link string) ([]byte, error)
}
