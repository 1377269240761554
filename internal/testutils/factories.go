package testutils

import (
	"time"

	"link-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// LinkFactory provides methods to create test Link data
type LinkFactory struct{}

// NewLinkFactory creates a new LinkFactory
func NewLinkFactory() *LinkFactory {
	return &LinkFactory{}
}

// Placeholder creates a test Link the way create produces it: disabled, no target
func (f *LinkFactory) Placeholder(owner uuid.UUID) *models.Link {
	return &models.Link{
		ID:        uuid.New(),
		Owner:     owner,
		Enabled:   false,
		To:        nil,
		Paid:      false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Updated creates a test Link as it looks after a successful update
func (f *LinkFactory) Updated(owner uuid.UUID, name, to string, paid bool) *models.Link {
	link := f.Placeholder(owner)
	link.Name = name
	link.To = &to
	link.Paid = paid
	link.Webhooks = models.StringSlice{"hook-" + uuid.New().String()[:8]}
	return link
}

// WithEnabled sets the enabled flag
func (f *LinkFactory) WithEnabled(link *models.Link, enabled bool) *models.Link {
	link.Enabled = enabled
	return link
}
