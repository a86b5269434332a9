package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ajisdzalparo/finsmart-entitlement/pkg/snapshot"
)

// Config holds the billing API connection settings.
type Config struct {
	BaseURL string        `env:"BILLING_API_URL,required"`            // e.g. https://api.finsmart.app/billing
	Token   string        `env:"BILLING_API_TOKEN"`                   // bearer token, optional for cookie-auth deployments
	Timeout time.Duration `env:"BILLING_HTTP_TIMEOUT" envDefault:"10s"`
}

// Client is a read-only client for the billing subsystem's subscription
// endpoint. It fetches the current subscription record and nothing else;
// checkout, cancellation and webhooks belong to the billing subsystem.
//
// The client performs no retry or backoff. Retrying a failed fetch is the
// caller's policy, not the client's.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a billing Client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// subscriptionPayload is the wire shape returned by the billing API.
// Null max* fields are the sentinel for "unlimited".
type subscriptionPayload struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	PlanID string `json:"planId"`
	Plan   struct {
		Name            string   `json:"name"`
		Price           float64  `json:"price"`
		Interval        string   `json:"interval"`
		Features        []string `json:"features"`
		HasAI           bool     `json:"hasAI"`
		HasOCR          bool     `json:"hasOCR"`
		HasReports      bool     `json:"hasReports"`
		HasExport       bool     `json:"hasExport"`
		MaxTransactions *int64   `json:"maxTransactions"`
		MaxGoals        *int64   `json:"maxGoals"`
		MaxCategories   *int64   `json:"maxCategories"`
	} `json:"plan"`
	Status          string     `json:"status"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	AutoRenew       bool       `json:"autoRenew"`
	NextBillingDate *time.Time `json:"nextBillingDate"`
}

// CurrentSubscription fetches the user's current subscription record.
// Returns (nil, nil) when the user has no subscription (implicit free plan).
func (c *Client) CurrentSubscription(ctx context.Context, userID uuid.UUID) (*snapshot.Subscription, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/subscriptions/current", nil)
	if err != nil {
		return nil, fmt.Errorf("build subscription request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-User-ID", userID.String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Join(ErrFetchFailed,
			fmt.Errorf("billing API returned status %d", resp.StatusCode))
	}

	var payload subscriptionPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("decode subscription: %w", err))
	}

	return decodeSubscription(payload)
}

// Fetcher adapts the client to the snapshot.FetchFunc signature for a fixed
// user, so it can be plugged straight into a snapshot.Service.
func (c *Client) Fetcher(userID uuid.UUID) snapshot.FetchFunc {
	return func(ctx context.Context) (*snapshot.Subscription, error) {
		return c.CurrentSubscription(ctx, userID)
	}
}

func decodeSubscription(payload subscriptionPayload) (*snapshot.Subscription, error) {
	var userID uuid.UUID
	if payload.UserID != "" {
		parsed, err := uuid.Parse(payload.UserID)
		if err != nil {
			return nil, errors.Join(ErrMalformedPayload,
				fmt.Errorf("invalid user ID %q: %w", payload.UserID, err))
		}
		userID = parsed
	}

	status := snapshot.Status(payload.Status)
	switch status {
	case snapshot.StatusActive, snapshot.StatusPending, snapshot.StatusCancelled, snapshot.StatusExpired:
	default:
		// An unrecognized status must not crash evaluation; pending is the
		// most conservative non-terminal interpretation.
		status = snapshot.StatusPending
	}

	return &snapshot.Subscription{
		ID:              payload.ID,
		UserID:          userID,
		PlanName:        payload.Plan.Name,
		Status:          status,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		AutoRenew:       payload.AutoRenew,
		NextBillingDate: payload.NextBillingDate,
	}, nil
}
