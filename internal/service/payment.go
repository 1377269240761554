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

// PaymentService asks the payments API whether a link is payment-eligible
// for its owner. The eligibility policy itself lives in that API.
type PaymentService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// Ensure PaymentService implements PaymentServiceInterface
var _ PaymentServiceInterface = (*PaymentService)(nil)

// NewPaymentService creates a new payments client
func NewPaymentService(cfg *config.Config) *PaymentService {
	timeout := time.Duration(cfg.PaymentsTimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &PaymentService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// paymentEligibilityRequest is the payload sent to the payments API
type paymentEligibilityRequest struct {
	Owner string `json:"owner"`
	Link  struct {
		ID   string  `json:"id"`
		Name string  `json:"name"`
		To   *string `json:"to"`
	} `json:"link"`
}

// paymentEligibilityAPIResponse represents the payments API response
type paymentEligibilityAPIResponse struct {
	Paid bool `json:"paid"`
}

// ComputePaid returns the payment-eligibility flag for the given owner/link pair
func (s *PaymentService) ComputePaid(ctx context.Context, owner uuid.UUID, link *models.Link) (bool, error) {
	if s.cfg.PaymentsBaseURL == "" {
		return false, fmt.Errorf("payments configuration missing (PAYMENTS_BASE_URL)")
	}

	reqBody := paymentEligibilityRequest{Owner: owner.String()}
	reqBody.Link.ID = link.ID.String()
	reqBody.Link.Name = link.Name
	reqBody.Link.To = link.To

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return false, fmt.Errorf("marshal eligibility request: %w", err)
	}

	url := strings.TrimRight(s.cfg.PaymentsBaseURL, "/") + "/v1/links/eligibility"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("build eligibility request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.PaymentsToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.PaymentsToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("payments API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, fmt.Errorf("payments API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp paymentEligibilityAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return false, fmt.Errorf("decode payments API response: %w", err)
	}

	return apiResp.Paid, nil
}
