package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"mindtriage/config"
	"mindtriage/internal/model"
)

// ReferralClient calls the external referral-creation collaborator for
// high/imminent results. Referral creation is best-effort and additive: a
// failure here is logged and returned as a typed error, and never blocks,
// retries, or reverses the locally decided escalation actions.
type ReferralClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewReferralClient creates a new referral client
func NewReferralClient(cfg *config.ReferralConfig) *ReferralClient {
	if !cfg.IsEnabled() {
		log.Println("Warning: REFERRAL_API_URL not set, referral requests will be skipped")
	}
	return &ReferralClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// ReferralError is the typed failure for a referral request. StatusCode is
// zero for transport-level failures.
type ReferralError struct {
	StatusCode int
	Err        error
}

func (e *ReferralError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("referral API error %d", e.StatusCode)
	}
	return fmt.Sprintf("referral request failed: %v", e.Err)
}

func (e *ReferralError) Unwrap() error {
	return e.Err
}

// referralRequest is the outbound payload for the collaborator
type referralRequest struct {
	UserID             string                    `json:"userId"`
	RiskLevel          model.RiskLevel           `json:"riskLevel"`
	DetectedConditions []model.ConditionTag      `json:"detectedConditions"`
	ReferralReason     string                    `json:"referralReason"`
	ContactPreference  []model.ContactPreference `json:"contactPreference"`
}

// referralResponse is the collaborator's success payload
type referralResponse struct {
	ReferralID string `json:"referralId"`
	AlertID    string `json:"alertId"`
}

// RequestReferral asks the collaborator to create a professional referral and
// alert for the user. No-ops with empty ids when the risk level is below
// high: referrals exist only for high/imminent results. On any transport or
// non-2xx failure it logs, returns a *ReferralError, and leaves the caller's
// already-dispatched escalation untouched.
func (c *ReferralClient) RequestReferral(ctx context.Context, userID string, risk model.RiskLevel, reason string, conditions []model.ConditionTag, contact []model.ContactPreference) (*model.ReferralOutcome, error) {
	if !risk.AtLeast(model.RiskHigh) {
		return &model.ReferralOutcome{Requested: false}, nil
	}

	if c.baseURL == "" {
		log.Printf("[Referral Client] skipping referral for user %s: collaborator not configured", userID)
		return &model.ReferralOutcome{Requested: false}, nil
	}

	if conditions == nil {
		conditions = []model.ConditionTag{}
	}
	payload, err := json.Marshal(referralRequest{
		UserID:             userID,
		RiskLevel:          risk,
		DetectedConditions: conditions,
		ReferralReason:     reason,
		ContactPreference:  contact,
	})
	if err != nil {
		return nil, &ReferralError{Err: fmt.Errorf("failed to encode referral request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/referrals", bytes.NewReader(payload))
	if err != nil {
		return nil, &ReferralError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	// Lets the collaborator dedupe if the caller's session resubmits
	req.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Referral Client] ERROR: request failed for user %s: %v", userID, err)
		return nil, &ReferralError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[Referral Client] ERROR: failed to read response for user %s: %v", userID, err)
		return nil, &ReferralError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[Referral Client] ERROR: collaborator returned %d for user %s: %s", resp.StatusCode, userID, string(body))
		return nil, &ReferralError{StatusCode: resp.StatusCode}
	}

	var created referralResponse
	if err := json.Unmarshal(body, &created); err != nil {
		log.Printf("[Referral Client] ERROR: failed to parse response for user %s: %v", userID, err)
		return nil, &ReferralError{Err: fmt.Errorf("failed to parse referral response: %w", err)}
	}

	log.Printf("[Referral Client] referral created for user %s: referralId=%s alertId=%s", userID, created.ReferralID, created.AlertID)
	return &model.ReferralOutcome{
		Requested:  true,
		ReferralID: created.ReferralID,
		AlertID:    created.AlertID,
	}, nil
}
