package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultSendPath = "/fcm/send"

// FCMClientOptions configures the FCM gateway client. Endpoint and ServerKey
// are required in production; HTTPClient may be injected for tests.
type FCMClientOptions struct {
	Endpoint   string
	ServerKey  string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// FCMClient sends topic messages through the FCM legacy HTTP endpoint.
// It performs a single request per SendToTopic call, no retries.
type FCMClient struct {
	endpoint   string
	serverKey  string
	httpClient *http.Client
}

// NewFCMClient constructs a gateway client with sane defaults.
func NewFCMClient(opts FCMClientOptions) *FCMClient {
	endpoint := strings.TrimRight(strings.TrimSpace(opts.Endpoint), "/")
	if endpoint == "" {
		endpoint = "https://fcm.googleapis.com"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &FCMClient{
		endpoint:   endpoint,
		serverKey:  opts.ServerKey,
		httpClient: httpClient,
	}
}

type sendRequest struct {
	To           string            `json:"to"`
	Notification *Notification     `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

type sendResponse struct {
	MessageID *int64 `json:"message_id"`
	Error     string `json:"error"`
}

// SendToTopic posts the message to /topics/<topic> and returns the gateway
// message ID.
func (c *FCMClient) SendToTopic(ctx context.Context, topic string, msg Message) (string, error) {
	if topic == "" {
		return "", fmt.Errorf("empty topic")
	}

	body, err := json.Marshal(sendRequest{
		To:           "/topics/" + topic,
		Notification: msg.Notification,
		Data:         msg.Data,
	})
	if err != nil {
		return "", fmt.Errorf("marshal error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+defaultSendPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("dispatch error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("response read error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var sr sendResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return "", fmt.Errorf("response decode error: %w", err)
	}
	if sr.Error != "" {
		return "", fmt.Errorf("gateway error: %s", sr.Error)
	}
	if sr.MessageID == nil {
		return "", fmt.Errorf("gateway response has no message id")
	}

	return strconv.FormatInt(*sr.MessageID, 10), nil
}
