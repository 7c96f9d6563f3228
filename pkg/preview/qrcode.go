package preview

import (
	"encoding/base64"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSize = 128

// VerificationPayload is the text encoded in the certificate QR code.
func VerificationPayload(cert Certificate) string {
	return strings.Join([]string{
		"Barangay " + cert.Locality.Barangay + ", " + cert.Locality.City,
		"Certification No: " + cert.CertificationNo,
		"Transaction No: " + cert.TransactionNo,
		"Name: " + cert.FullName,
		"Issued: " + cert.NumericDate,
	}, "\n")
}

// qrDataURI encodes payload as a PNG QR code inside a data URI.
func qrDataURI(payload string, size int) (string, error) {
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("preview: encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
