package tag

import (
	"github.com/skip2/go-qrcode"
)

// Renderer turns a unique code into scannable image bytes. Handlers treat
// the encoding itself as opaque.
type Renderer interface {
	Render(content string) ([]byte, error)
}

// QRRenderer renders PNG QR codes
type QRRenderer struct {
	Size int
}

// Render encodes content as a PNG QR image
func (r QRRenderer) Render(content string) ([]byte, error) {
	size := r.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
