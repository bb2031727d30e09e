// Package line provides a client for pushing alerts through the LINE
// Messaging API. It supports single-recipient pushes and multicast pushes
// to a bounded batch of recipients, transparently splitting batches that
// exceed the API's hard cap.
package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mzhdanov/alert-router/internal/model"
)

const (
	defaultBaseURL = "https://api.line.me/v2/bot"
	defaultTimeout = 10 * time.Second

	// MaxMulticastTargets is the LINE API cap on recipients per multicast
	// call. Larger batches are split by the client.
	MaxMulticastTargets = 500
)

// Result is the outcome of one push call. A partially failed multicast has
// Success=false and the affected addresses in FailedTargets.
type Result struct {
	Success       bool
	ErrorCode     string
	ErrorMessage  string
	FailedTargets []string
}

// Client represents a LINE Messaging API client used to push alerts.
type Client struct {
	token   string       // channel access token for authentication
	baseURL string       // API endpoint, overridable for tests
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new LINE Client with the given channel access token.
// An empty baseURL selects the production endpoint.
func NewClient(token, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		token:   token,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

type multicastRequest struct {
	To       []string      `json:"to"`
	Messages []textMessage `json:"messages"`
}

type apiError struct {
	Message string `json:"message"`
}

// Push sends an alert to a single recipient.
func (c *Client) Push(ctx context.Context, to string, alert model.Alert) (Result, error) {
	body := pushRequest{
		To:       to,
		Messages: []textMessage{{Type: "text", Text: FormatAlert(alert)}},
	}

	if err := c.post(ctx, "/message/push", body); err != nil {
		return Result{Success: false, ErrorCode: "PUSH_FAILED", ErrorMessage: err.Error()}, err
	}

	return Result{Success: true}, nil
}

// Multicast sends an alert to a batch of recipients, splitting into chunks
// of at most MaxMulticastTargets. A failed chunk contributes all of its
// addresses to FailedTargets; the remaining chunks are still attempted.
func (c *Client) Multicast(ctx context.Context, to []string, alert model.Alert) (Result, error) {
	msg := textMessage{Type: "text", Text: FormatAlert(alert)}

	var failed []string
	var lastErr string

	for start := 0; start < len(to); start += MaxMulticastTargets {
		end := start + MaxMulticastTargets
		if end > len(to) {
			end = len(to)
		}
		chunk := to[start:end]

		body := multicastRequest{To: chunk, Messages: []textMessage{msg}}

		if err := c.post(ctx, "/message/multicast", body); err != nil {
			failed = append(failed, chunk...)
			lastErr = err.Error()
		}
	}

	if len(failed) > 0 {
		return Result{
			Success:       false,
			ErrorCode:     "PARTIAL_FAILURE",
			ErrorMessage:  lastErr,
			FailedTargets: failed,
		}, nil
	}

	return Result{Success: true}, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if jsonErr := json.Unmarshal(data, &apiErr); jsonErr == nil && apiErr.Message != "" {
			return fmt.Errorf("line API error: %s: %s", resp.Status, apiErr.Message)
		}

		return fmt.Errorf("line API error: %s", resp.Status)
	}

	return nil
}

// FormatAlert renders the alert as the plain-text message body pushed to
// recipients.
func FormatAlert(a model.Alert) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s\n", a.MessageType, a.Title)
	b.WriteString(a.Content)

	if a.SourceHost != "" {
		fmt.Fprintf(&b, "\nhost: %s", a.SourceHost)
	}
	if a.SourceService != "" {
		fmt.Fprintf(&b, "\nservice: %s", a.SourceService)
	}
	if a.SourceIP != "" {
		fmt.Fprintf(&b, "\nip: %s", a.SourceIP)
	}

	fmt.Fprintf(&b, "\npriority: P%d", a.Priority)
	fmt.Fprintf(&b, "\nat: %s", a.Timestamp.Format(time.DateTime))

	return b.String()
}
