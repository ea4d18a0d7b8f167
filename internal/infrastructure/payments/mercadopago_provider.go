package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoProviderNotConfigured = errors.New("mercado pago provider not configured")

// MercadoPagoProvider renders submission-fee payment references through the
// Mercado Pago SDK. In mock mode it fabricates references locally so the
// whole flow works without provider credentials.
type MercadoPagoProvider struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentReferenceProvider = (*MercadoPagoProvider)(nil)

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	if isPaymentProviderMockEnabled() {
		log.Printf("[payment][provider] mock mode enabled")
		return &MercadoPagoProvider{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][provider] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][provider] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][provider] Mercado Pago client initialized")

	return &MercadoPagoProvider{client: payment.NewClient(cfg)}, nil
}

func (p *MercadoPagoProvider) CreateReference(ctx context.Context, amount float64, currency, externalRef string) (interfaces.PaymentReference, error) {
	if p != nil && p.mockMode {
		ref := interfaces.PaymentReference{
			ReferenceNumber: fmt.Sprintf("MOCK-%s", strings.ToUpper(uuid.NewString()[:8])),
			QRPayload:       fmt.Sprintf("mock://pay?ref=%s&amount=%.2f&currency=%s", externalRef, amount, currency),
			ProviderID:      fmt.Sprintf("%d", time.Now().UTC().UnixNano()),
		}
		log.Printf("[payment][provider] mock reference created external_ref=%s reference=%s", externalRef, ref.ReferenceNumber)
		return ref, nil
	}

	if p == nil || p.client == nil {
		log.Printf("[payment][provider] provider not configured")
		return interfaces.PaymentReference{}, ErrMercadoPagoProviderNotConfigured
	}
	log.Printf("[payment][provider] create reference start external_ref=%s amount=%.2f %s", externalRef, amount, currency)

	req := payment.Request{
		TransactionAmount: amount,
		Description:       fmt.Sprintf("certification submission fee %s", externalRef),
		ExternalReference: externalRef,
		PaymentMethodID:   getenvDefault("PAYMENT_METHOD_ID", "pix"),
	}

	resp, err := p.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][provider] sdk create failed external_ref=%s err=%v", externalRef, err)
		return interfaces.PaymentReference{}, err
	}

	ref := interfaces.PaymentReference{
		ReferenceNumber: externalRef,
		ProviderID:      fmt.Sprintf("%d", resp.ID),
	}
	if resp.PointOfInteraction.TransactionData.QRCode != "" {
		ref.QRPayload = resp.PointOfInteraction.TransactionData.QRCode
	}
	log.Printf("[payment][provider] create reference success external_ref=%s provider_id=%s status=%s", externalRef, ref.ProviderID, resp.Status)

	return ref, nil
}

func isPaymentProviderMockEnabled() bool {
	for _, key := range []string{"PAYMENT_PROVIDER_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
