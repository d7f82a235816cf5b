package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService renders PNG QR codes pointing at an event's guest landing
// page, so owners can print them for the venue.
type QRService struct {
	baseURL string
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateEventQR returns the PNG bytes of a QR code for eventID's
// landing URL.
func (s *QRService) GenerateEventQR(eventID string, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s/e/%s", s.baseURL, eventID)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
