package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier posts final text messages to a slash command's response URL.
// Slack keeps a response URL valid for a short while after the invocation,
// which is what carries booking outcomes that outlive the HTTP exchange.
type Notifier struct {
	http *http.Client
}

// NewNotifier creates a notifier.
func NewNotifier(timeout time.Duration) *Notifier {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Notifier{http: &http.Client{Timeout: timeout}}
}

// Notify posts text to the response URL. It blocks until delivery finishes
// so the owning handler never returns before the message is on the wire.
func (n *Notifier) Notify(ctx context.Context, responseURL, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, responseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("notify slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify slack: response url returned %d", resp.StatusCode)
	}
	return nil
}
