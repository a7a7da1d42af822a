package service

import (
	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	Size int
}

// Encode renders the raw token string. Any symbology that decodes back to
// the original string would do; PNG at medium recovery is what the clients
// expect.
func (g DefaultQRGenerator) Encode(token string) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(token, qrcode.Medium, size)
}

var _ QRGenerator = DefaultQRGenerator{}
