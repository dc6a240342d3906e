package facades

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// QRCodeFacade renders PIX payment strings as PNG data URIs.
type QRCodeFacade struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeFacade creates an encoder producing size x size images.
func NewQRCodeFacade(size int) *QRCodeFacade {
	if size <= 0 {
		size = defaultQRSize
	}
	return &QRCodeFacade{size: size, level: qrcode.Medium}
}

// Encode returns a data:image/png;base64 URI for text.
func (f *QRCodeFacade) Encode(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty qr payload")
	}

	png, err := qrcode.Encode(text, f.level, f.size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
