// Package sales submits confirmed settlements to the external sales API.
package sales

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pos-settlement/config"
	"pos-settlement/internal/core/domain"
	"pos-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// maxErrorBody caps how much of an error response is read for the message.
const maxErrorBody = 4 << 10

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.SalesGateway over the REST sales API.
type Client struct {
	baseURL    string
	maxRetries int
	backoff    time.Duration
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a sales API client.
func NewClient(cfg config.SalesConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.RetryBackoff,
		httpClient: httpClient,
		log:        log,
	}
}

type paymentLine struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Amount        domain.Money         `json:"amount"`
}

type saleBody struct {
	Items      json.RawMessage `json:"items"`
	Payments   []paymentLine   `json:"payments"`
	CustomerID *string         `json:"customer_id"`
}

type orderPaymentBody struct {
	ItemsToPay json.RawMessage `json:"items_to_pay"`
	Payments   []paymentLine   `json:"payments"`
	CustomerID *string         `json:"customer_id"`
}

// acceptedBody covers both bare and enveloped success responses.
type acceptedBody struct {
	ID   any `json:"id"`
	Data *struct {
		ID any `json:"id"`
	} `json:"data"`
}

type rejectedBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Submit posts the settlement and returns the sales API's reference.
// Network errors and 5xx responses are retried with linear backoff; the
// attempt id travels as Idempotency-Key so retries cannot double-charge.
func (c *Client) Submit(ctx context.Context, session ports.Session, sub ports.SalesSubmission) (*ports.SalesReceipt, error) {
	url, body, err := c.build(sub)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v (last error: %v)", domain.ErrSubmissionFailed, ctx.Err(), lastErr)
			case <-time.After(time.Duration(attempt) * c.backoff):
			}
		}

		receipt, retry, err := c.post(ctx, session, url, body, sub.IdempotencyKey)
		if err == nil {
			c.log.Info().Str("attempt_id", sub.IdempotencyKey).Int("try", attempt+1).Str("sale_reference", receipt.Reference).Msg("sales: submission accepted")
			return receipt, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
		c.log.Warn().Err(err).Str("attempt_id", sub.IdempotencyKey).Int("try", attempt+1).Msg("sales: submission failed, retrying")
	}

	c.log.Error().Err(lastErr).Str("attempt_id", sub.IdempotencyKey).Msg("sales: all retry attempts exhausted")
	return nil, lastErr
}

func (c *Client) build(sub ports.SalesSubmission) (string, []byte, error) {
	lines := make([]paymentLine, 0, len(sub.Payments))
	for _, p := range domain.PositiveRows(sub.Payments) {
		lines = append(lines, paymentLine{PaymentMethod: p.Method, Amount: p.Amount})
	}
	items := sub.Items
	if len(items) == 0 {
		items = json.RawMessage("[]")
	}

	var (
		url     string
		payload any
	)
	switch sub.Kind {
	case domain.AttemptKindSale:
		url = c.baseURL + "/sales"
		payload = saleBody{Items: items, Payments: lines, CustomerID: sub.CustomerID}
	case domain.AttemptKindOrder:
		if sub.TargetID == "" {
			return "", nil, fmt.Errorf("%w: order payment needs a target id", domain.ErrInvalidArgument)
		}
		url = c.baseURL + "/orders/" + sub.TargetID + "/payments"
		payload = orderPaymentBody{ItemsToPay: items, Payments: lines, CustomerID: sub.CustomerID}
	default:
		return "", nil, fmt.Errorf("%w: unknown attempt kind %q", domain.ErrInvalidArgument, sub.Kind)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("marshal sales payload: %w", err)
	}
	return url, body, nil
}

// post performs one HTTP call. The bool result reports whether the failure is retryable.
func (c *Client) post(ctx context.Context, session ports.Session, url string, body []byte, idempotencyKey string) (*ports.SalesReceipt, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("create sales request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+session.CurrentToken())
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return &ports.SalesReceipt{Reference: referenceFrom(raw)}, false, nil
	case resp.StatusCode == http.StatusUnauthorized:
		session.OnUnauthorized()
		return nil, false, domain.ErrSessionExpired
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("%w: %s", domain.ErrSubmissionFailed, messageFrom(resp.StatusCode, raw))
	default:
		return nil, false, fmt.Errorf("%w: %s", domain.ErrSubmissionFailed, messageFrom(resp.StatusCode, raw))
	}
}

func referenceFrom(raw []byte) string {
	var body acceptedBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	id := body.ID
	if id == nil && body.Data != nil {
		id = body.Data.ID
	}
	if id == nil {
		return ""
	}
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}

func messageFrom(status int, raw []byte) string {
	var body rejectedBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return fmt.Sprintf("sales api returned %d: %s", status, body.Message)
		}
		if body.Error != "" {
			return fmt.Sprintf("sales api returned %d: %s", status, body.Error)
		}
	}
	return fmt.Sprintf("sales api returned %d", status)
}

