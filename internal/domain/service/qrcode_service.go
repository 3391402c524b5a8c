package service

// QRCodeService defines the contract for generating pairing QR codes.
type QRCodeService interface {
	// GeneratePairingQR renders a PNG QR code encoding a bracelet token so
	// a caregiver can scan it instead of typing the token.
	GeneratePairingQR(token string) ([]byte, error)
}
