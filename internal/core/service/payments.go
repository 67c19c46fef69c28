package service

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
)

type PaymentsAPI struct {
	capability
}

// MakePayment processes a purchase.
func (p *PaymentsAPI) MakePayment(ctx context.Context, req domain.PaymentRequest) (*domain.Transaction, error) {
	return send[domain.Transaction](ctx, &p.capability, http.MethodPost, p.url(PaymentsURL, ""), req, "payment")
}

// PreAuth reserves funds without capturing them. The payment method's
// complete flag is always sent as false; capture later with Complete.
func (p *PaymentsAPI) PreAuth(ctx context.Context, req domain.PaymentRequest) (*domain.Transaction, error) {
	incomplete := false
	switch {
	case req.Card != nil:
		card := *req.Card
		card.Complete = &incomplete
		req.Card = &card
	case req.Token != nil:
		token := *req.Token
		token.Complete = &incomplete
		req.Token = &token
	case req.PaymentProfile != nil:
		profile := *req.PaymentProfile
		profile.Complete = &incomplete
		req.PaymentProfile = &profile
	default:
		return nil, domain.NewMissingPaymentMethodError()
	}

	return send[domain.Transaction](ctx, &p.capability, http.MethodPost, p.url(PaymentsURL, ""), req, "pre-authorization")
}

// Complete captures a previous pre-authorization.
func (p *PaymentsAPI) Complete(ctx context.Context, paymentID string, amount float64) (*domain.Transaction, error) {
	url := p.url(CompletionsURL, paymentID)
	return send[domain.Transaction](ctx, &p.capability, http.MethodPost, url, domain.AmountRequest{Amount: amount}, "completion")
}

// Return refunds a completed payment.
func (p *PaymentsAPI) Return(ctx context.Context, paymentID string, amount float64) (*domain.Transaction, error) {
	url := p.url(ReturnsURL, paymentID)
	return send[domain.Transaction](ctx, &p.capability, http.MethodPost, url, domain.AmountRequest{Amount: amount}, "return")
}

// Void cancels a payment before it settles.
func (p *PaymentsAPI) Void(ctx context.Context, paymentID string, amount float64) (*domain.Transaction, error) {
	url := p.url(VoidURL, paymentID)
	return send[domain.Transaction](ctx, &p.capability, http.MethodPost, url, domain.AmountRequest{Amount: amount}, "void")
}
