package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"link-manager-backend/internal/database/models"
	"link-manager-backend/internal/logger"
	"link-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkService provides link-related business logic
type LinkService struct {
	linkRepo  repository.LinkRepositoryInterface
	enricher  LinkEnricherInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure LinkService implements LinkServiceInterface
var _ LinkServiceInterface = (*LinkService)(nil)

// NewLinkService creates a new LinkService
func NewLinkService(linkRepo repository.LinkRepositoryInterface, enricher LinkEnricherInterface, validator *validator.Validate) *LinkService {
	return &LinkService{
		linkRepo:  linkRepo,
		enricher:  enricher,
		validator: validator,
		log:       logger.New(),
	}
}

// LinkSummary is the condensed listing projection of a link
type LinkSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Paid    bool   `json:"paid"`
}

// LinkListResponse is the listing payload. LastID is the id of the final item
// and seeds a subsequent page request; null when the list is empty.
type LinkListResponse struct {
	Data   []LinkSummary `json:"data"`
	LastID *string       `json:"lastId"`
}

// LinkResponse represents a full link record in API responses
type LinkResponse struct {
	ID       string   `json:"id"`
	Owner    string   `json:"owner"`
	Name     string   `json:"name"`
	To       *string  `json:"to"`
	Enabled  bool     `json:"enabled"`
	Paid     bool     `json:"paid"`
	Webhooks []string `json:"webhooks"`
}

// UpdateLinkPayload is the client-supplied link body for updates. ID and Paid
// are accepted but never trusted: the path id replaces ID before persistence
// and Paid is overwritten by enrichment.
type UpdateLinkPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
	To      string `json:"to" validate:"required,url,max=2000"`
	Enabled *bool  `json:"enabled"`
	Paid    bool   `json:"paid"`
}

// ListLinks returns condensed summaries for all links of the owner, in
// insertion order, plus the lastId cursor.
func (s *LinkService) ListLinks(owner uuid.UUID) (*LinkListResponse, error) {
	links, err := s.linkRepo.GetByOwner(owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get links by owner: %w", err)
	}

	data := make([]LinkSummary, 0, len(links))
	for i := range links {
		data = append(data, LinkSummary{
			ID:      links[i].ID.String(),
			Name:    links[i].Name,
			Enabled: links[i].Enabled,
			Paid:    links[i].Paid,
		})
	}

	var lastID *string
	if len(data) > 0 {
		lastID = &data[len(data)-1].ID
	}

	return &LinkListResponse{Data: data, LastID: lastID}, nil
}

// GetLink returns the full record for the given id scoped to owner. An absent
// or foreign id yields (nil, nil); whether the record never existed or belongs
// to someone else is deliberately not distinguishable.
func (s *LinkService) GetLink(owner, id uuid.UUID) (*LinkResponse, error) {
	link, err := s.linkRepo.GetByIDAndOwner(id, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	res := toLinkResponse(link)
	return &res, nil
}

// CreateLink produces a disabled placeholder bound to the owner. Any client
// body was already discarded by the handler.
func (s *LinkService) CreateLink(owner uuid.UUID) (*LinkResponse, error) {
	link := &models.Link{
		Owner:   owner,
		Enabled: false,
		To:      nil,
	}

	if err := s.linkRepo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	res := toLinkResponse(link)
	return &res, nil
}

// UpdateLink validates the payload, enriches it (paid then webhooks) and
// persists the result scoped to owner. The path-supplied id always wins over
// any id embedded in the payload.
func (s *LinkService) UpdateLink(ctx context.Context, owner, id uuid.UUID, payload *UpdateLinkPayload) error {
	if err := s.validator.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Fields: toFieldErrors(verrs)}
		}
		return fmt.Errorf("validate link payload: %w", err)
	}

	link := &models.Link{
		ID:    id,
		Owner: owner,
		Name:  payload.Name,
		To:    &payload.To,
	}
	if payload.Enabled != nil {
		link.Enabled = *payload.Enabled
	}

	enriched, err := s.enricher.Enrich(ctx, owner, link)
	if err != nil {
		s.log.WithField("link_id", id.String()).WithError(err).Error("link enrichment failed")
		return fmt.Errorf("%w: %v", ErrEnrichment, err)
	}

	updates := map[string]interface{}{
		"name":     enriched.Name,
		"to":       enriched.To,
		"paid":     enriched.Paid,
		"webhooks": enriched.Webhooks,
	}
	if payload.Enabled != nil {
		updates["enabled"] = *payload.Enabled
	}

	matched, err := s.linkRepo.UpdateByIDAndOwner(id, owner, updates)
	if err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}
	if matched == 0 {
		// Absent or foreign id: the owner-scoped update simply matched nothing
		s.log.WithField("link_id", id.String()).Debug("update matched no rows")
	}

	return nil
}

// SetEnabled persists only the enabled flag, bypassing validation and
// enrichment entirely.
func (s *LinkService) SetEnabled(owner, id uuid.UUID, enabled bool) error {
	matched, err := s.linkRepo.UpdateByIDAndOwner(id, owner, map[string]interface{}{"enabled": enabled})
	if err != nil {
		return fmt.Errorf("failed to set enabled: %w", err)
	}
	if matched == 0 {
		s.log.WithField("link_id", id.String()).Debug("setEnabled matched no rows")
	}

	return nil
}

func toLinkResponse(link *models.Link) LinkResponse {
	return LinkResponse{
		ID:       link.ID.String(),
		Owner:    link.Owner.String(),
		Name:     link.Name,
		To:       link.To,
		Enabled:  link.Enabled,
		Paid:     link.Paid,
		Webhooks: link.Webhooks,
	}
}

// toFieldErrors converts validator errors to the client-facing field error list
func toFieldErrors(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)
		case "url":
			msg = fmt.Sprintf("%s must be a valid url", field)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", field)
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}
