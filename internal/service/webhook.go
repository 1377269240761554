package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"link-manager-backend/internal/config"
	"link-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// WebhookService registers hooks for a link with the webhooks API and returns
// their references. Delivery and retry are that API's concern, not ours.
type WebhookService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// Ensure WebhookService implements WebhookServiceInterface
var _ WebhookServiceInterface = (*WebhookService)(nil)

// NewWebhookService creates a new webhooks client
func NewWebhookService(cfg *config.Config) *WebhookService {
	timeout := time.Duration(cfg.WebhooksTimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &WebhookService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// webhookRegistrationRequest is the payload sent to the webhooks API.
// Paid is included because hook eligibility may depend on it.
type webhookRegistrationRequest struct {
	Owner string `json:"owner"`
	Link  struct {
		ID   string  `json:"id"`
		Name string  `json:"name"`
		To   *string `json:"to"`
		Paid bool    `json:"paid"`
	} `json:"link"`
}

// webhookRegistrationAPIResponse represents the webhooks API response
type webhookRegistrationAPIResponse struct {
	Hooks []string `json:"hooks"`
}

// RegisterForLink registers the hooks appropriate to the given link. The link
// is expected to carry its computed paid flag already.
func (s *WebhookService) RegisterForLink(ctx context.Context, owner uuid.UUID, link *models.Link) (models.StringSlice, error) {
	if s.cfg.WebhooksBaseURL == "" {
		return nil, fmt.Errorf("webhooks configuration missing (WEBHOOKS_BASE_URL)")
	}

	reqBody := webhookRegistrationRequest{Owner: owner.String()}
	reqBody.Link.ID = link.ID.String()
	reqBody.Link.Name = link.Name
	reqBody.Link.To = link.To
	reqBody.Link.Paid = link.Paid

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal registration request: %w", err)
	}

	url := strings.TrimRight(s.cfg.WebhooksBaseURL, "/") + "/v1/hooks"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.WebhooksToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.WebhooksToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhooks API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("webhooks API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp webhookRegistrationAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode webhooks API response: %w", err)
	}

	return models.StringSlice(apiResp.Hooks), nil
}
