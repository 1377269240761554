package service

import (
	"context"

	"link-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LinkServiceInterface defines the interface for link service
type LinkServiceInterface interface {
	ListLinks(owner uuid.UUID) (*LinkListResponse, error)
	GetLink(owner, id uuid.UUID) (*LinkResponse, error)
	CreateLink(owner uuid.UUID) (*LinkResponse, error)
	UpdateLink(ctx context.Context, owner, id uuid.UUID, payload *UpdateLinkPayload) error
	SetEnabled(owner, id uuid.UUID, enabled bool) error
}

// LinkEnricherInterface computes the derived fields of a link before it is persisted
type LinkEnricherInterface interface {
	Enrich(ctx context.Context, owner uuid.UUID, link *models.Link) (*models.Link, error)
}

// PaymentServiceInterface decides whether a link is payment-eligible for its owner
type PaymentServiceInterface interface {
	ComputePaid(ctx context.Context, owner uuid.UUID, link *models.Link) (bool, error)
}

// WebhookServiceInterface registers hooks appropriate to a link and returns their references
type WebhookServiceInterface interface {
	RegisterForLink(ctx context.Context, owner uuid.UUID, link *models.Link) (models.StringSlice, error)
}
