package qrcode

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"portal/config"
	"portal/internal/domain/service"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the receipt QR encoder from the receipt settings.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.Receipt.QRSize, "M")
}

// Encode generates a PNG QR code for the content, typically a receipt URL
func (s *qrcodeService) Encode(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("qr content is empty")
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}
	// The border is drawn by the receipt layout.
	qrCode.DisableBorder = true

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
