package models

// PixChargeRequest is the body of POST /api/pix/generate.
type PixChargeRequest struct {
	Amount float64 `json:"amount"`
}

// PixCharge is the canonical form of a created PIX charge.
type PixCharge struct {
	ExternalID string `json:"externalId"` // gateway correlation id used for status polling
	QRText     string `json:"qrText"`     // copy-and-paste payment string
	Raw        []byte `json:"-"`          // charge object as received, after unwrapping
}
