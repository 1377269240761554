package service

import (
	"context"
	"fmt"

	"link-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// LinkEnricher applies the two derived mutations a link receives on update:
// the payment-eligibility flag, then webhook registration. The steps are
// strictly ordered because webhook eligibility may depend on the computed
// paid value. The first failure aborts the chain; nothing partial is returned.
type LinkEnricher struct {
	payments PaymentServiceInterface
	webhooks WebhookServiceInterface
}

// Ensure LinkEnricher implements LinkEnricherInterface
var _ LinkEnricherInterface = (*LinkEnricher)(nil)

// NewLinkEnricher creates a new LinkEnricher
func NewLinkEnricher(payments PaymentServiceInterface, webhooks WebhookServiceInterface) *LinkEnricher {
	return &LinkEnricher{
		payments: payments,
		webhooks: webhooks,
	}
}

// Enrich overwrites link.Paid with the computed value (whatever the client
// supplied) and attaches the registered webhook references.
func (e *LinkEnricher) Enrich(ctx context.Context, owner uuid.UUID, link *models.Link) (*models.Link, error) {
	paid, err := e.payments.ComputePaid(ctx, owner, link)
	if err != nil {
		return nil, fmt.Errorf("compute paid: %w", err)
	}
	link.Paid = paid

	// Webhook registration must see the computed paid flag, not client input
	hooks, err := e.webhooks.RegisterForLink(ctx, owner, link)
	if err != nil {
		return nil, fmt.Errorf("register webhooks: %w", err)
	}
	link.Webhooks = hooks

	return link, nil
}
