package service

// QRCodeService renders QR codes
type QRCodeService interface {
	// Encode returns a PNG image of a QR code for the content
	Encode(content string) ([]byte, error)
}
