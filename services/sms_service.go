package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ISMSService defines the interface for outbound customer SMS.
type ISMSService interface {
	SendSMS(ctx context.Context, recipient, message string) error
}

// ArkeselSMSService implements ISMSService against the Arkesel v2 SMS API.
type ArkeselSMSService struct {
	baseURL  string
	apiKey   string
	senderID string
	client   *http.Client
}

// NewSMSService creates an Arkesel-backed sender, or a log-only sender when
// no API key is configured so the rest of the workflow keeps working.
func NewSMSService(baseURL, apiKey, senderID string, logger *slog.Logger) ISMSService {
	if apiKey == "" {
		logger.Warn("sms api key not configured, falling back to log-only delivery")
		return &logOnlySMSService{logger: logger}
	}
	return &ArkeselSMSService{
		baseURL:  baseURL,
		apiKey:   apiKey,
		senderID: senderID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type smsRequest struct {
	Sender     string   `json:"sender"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// SendSMS posts a single message to the gateway.
func (s *ArkeselSMSService) SendSMS(ctx context.Context, recipient, message string) error {
	body, err := json.Marshal(smsRequest{
		Sender:     s.senderID,
		Message:    message,
		Recipients: []string{recipient},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v2/sms/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// logOnlySMSService records outbound messages without delivering them.
type logOnlySMSService struct {
	logger *slog.Logger
}

func (s *logOnlySMSService) SendSMS(ctx context.Context, recipient, message string) error {
	s.logger.Info("sms delivery skipped (log-only mode)",
		"recipient", recipient, "message", message)
	return nil
}
