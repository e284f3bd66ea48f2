// Package notify sends WhatsApp notifications through a wabot-style gateway
// and owns the outbound message templates.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"papergenius_backend/platform/config"
	"papergenius_backend/platform/logger"
)

const sendTimeout = 10 * time.Second

// WhatsAppClient sends text messages through the configured gateway.
type WhatsAppClient struct {
	httpClient  *http.Client
	url         string
	instanceID  string
	accessToken string
	log         *logger.Logger
}

// NewWhatsAppClient creates a gateway client. Returns nil when the gateway is
// not configured; callers treat a nil client as notifications disabled.
func NewWhatsAppClient(cfg config.WhatsAppConfig, log *logger.Logger) *WhatsAppClient {
	if cfg.GetWhatsAppInstanceID() == "" || cfg.GetWhatsAppAccessToken() == "" {
		return nil
	}

	return &WhatsAppClient{
		httpClient:  &http.Client{Timeout: sendTimeout},
		url:         cfg.GetWhatsAppURL(),
		instanceID:  cfg.GetWhatsAppInstanceID(),
		accessToken: cfg.GetWhatsAppAccessToken(),
		log:         log,
	}
}

type sendRequest struct {
	Number      string `json:"number"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	InstanceID  string `json:"instance_id"`
	AccessToken string `json:"access_token"`
}

// Send delivers a text message to the given number.
func (c *WhatsAppClient) Send(ctx context.Context, number, message string) error {
	payload, err := json.Marshal(sendRequest{
		Number:      number,
		Type:        "text",
		Message:     message,
		InstanceID:  c.instanceID,
		AccessToken: c.accessToken,
	})
	if err != nil {
		return fmt.Errorf("encode whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	c.log.Info("whatsapp message sent", "number", number)
	return nil
}
