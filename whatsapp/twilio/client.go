// package twilio sends WhatsApp messages through the Twilio REST API.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lanai-bot/whatsapp-llm-bot/logging"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	accountSID string
	authToken  string
	from       string // e.g. "whatsapp:+14155238886"
	logger     *logging.Logger
}

// messageResponse is the slice of Twilio's create-message response the bot
// cares about.
type messageResponse struct {
	SID          string `json:"sid"`
	ErrorMessage string `json:"error_message"`
}

// NewClient builds a Twilio client with explicit credentials.
func NewClient(accountSID, authToken, from string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		BaseURL: "https://api.twilio.com",
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		logger:     logger,
	}
}

// SendMessage sends a WhatsApp message and returns Twilio's message SID.
func (c *Client) SendMessage(ctx context.Context, to, body string) (string, error) {
	if to == "" {
		return "", fmt.Errorf("recipient cannot be empty")
	}
	if body == "" {
		return "", fmt.Errorf("message body cannot be empty")
	}

	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.BaseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		if msg.ErrorMessage != "" {
			return "", fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, msg.ErrorMessage)
		}
		return "", fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	c.logger.Debug("whatsapp message sent", "sid", msg.SID, "to", to)
	return msg.SID, nil
}
