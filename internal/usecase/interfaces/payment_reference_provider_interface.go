package interfaces

import "context"

// PaymentReference is the scannable payload handed to the applicant when a
// submission fee is due. The core stores it; rendering and capture belong
// to the provider.
type PaymentReference struct {
	ReferenceNumber string
	QRPayload       string
	ProviderID      string
}

// IPaymentReferenceProvider abstracts the external payment-QR renderer
// (e.g. Mercado Pago). The core never waits on payment completion; it only
// records the generated reference.
type IPaymentReferenceProvider interface {
	CreateReference(ctx context.Context, amount float64, currency, externalRef string) (PaymentReference, error)
}
