package telegram

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

const (
	shareEndpoint = "https://t.me/share/url"
	qrSize        = 512
)

// buildShareLink returns a Telegram share link that posts text together
// with target.
func buildShareLink(target, text string) string {
	q := url.Values{}
	q.Set("url", target)
	q.Set("text", text)
	return shareEndpoint + "?" + q.Encode()
}

// buildShareQR renders link as a PNG QR code.
func buildShareQR(link string) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
