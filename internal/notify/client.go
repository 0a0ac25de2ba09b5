// Package notify delivers the completion summary to the facility contact
// number through an SMS gateway. Delivery is strictly best-effort: the audit
// result is already final when a message goes out, and failures surface only
// as warnings.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Techy233/FSE1/internal/config"
	"github.com/Techy233/FSE1/internal/scoring"
)

// smsRequest is the JSON body posted to the gateway.
type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// Client posts summary messages to the configured SMS gateway.
type Client struct {
	config     config.SMSConfig
	httpClient *http.Client
}

// NewClient creates an SMS client with the gateway and timeout from the
// config.
func NewClient(cfg config.SMSConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// IsAvailable reports whether notifications are enabled and a gateway is
// configured.
func (c *Client) IsAvailable() bool {
	return c.config.Enabled && c.config.GatewayURL != ""
}

// Summary builds the human-readable completion message.
func Summary(facilityName string, total, stars int) string {
	verdict := "Requires Improvement"
	if scoring.Compliant(total) {
		verdict = "Compliant"
	}
	return fmt.Sprintf("FSE Assessment Complete for %s. Score: %d/100 (%d stars). %s.",
		facilityName, total, stars, verdict)
}

// Send posts a message to the gateway and waits for the response.
func (c *Client) Send(ctx context.Context, to, message string) error {
	body, err := json.Marshal(smsRequest{To: to, Message: message})
	if err != nil {
		return fmt.Errorf("notify: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify: gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// Dispatch sends a message on a background goroutine. onDone, if non-nil, is
// called with the delivery outcome; nil means delivered. Dispatch returns
// immediately and never blocks the caller.
func (c *Client) Dispatch(to, message string, onDone func(error)) {
	if !c.IsAvailable() {
		return
	}

	go func() {
		err := c.Send(context.Background(), to, message)
		if onDone != nil {
			onDone(err)
		}
	}()
}
