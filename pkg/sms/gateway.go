package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GatewaySender posts messages to a JSON SMS gateway.
type GatewaySender struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGatewaySender(baseURL, apiKey string) *GatewaySender {
	return &GatewaySender{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type gatewayRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

func (s *GatewaySender) Send(ctx context.Context, to, message string) error {
	body, err := json.Marshal(gatewayRequest{To: to, Message: message})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
