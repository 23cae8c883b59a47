package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OrderIntent is the draft order the frontend encodes into the payment's
// metadata at checkout time. It is how order details survive the gateway
// redirect.
type OrderIntent struct {
	FoodID           uint     `json:"foodId"`
	Quantity         int      `json:"quantity"`
	DeliveryLocation string   `json:"deliveryLocation"`
	PhoneNumber      string   `json:"phoneNumber"`
	DeliveryTime     string   `json:"deliveryTime"`
	PaymentMode      string   `json:"paymentMode"`
	AdditionalNotes  string   `json:"additionalNotes"`
	Addons           []string `json:"addons"`
	Drink            string   `json:"drink"`
}

// VerificationResult is what the workflow needs from a verified transaction.
// Amount is in pesewas, as the gateway reports it.
type VerificationResult struct {
	Status    string
	Amount    int64
	Reference string
	Intent    OrderIntent
}

// Success reports whether the gateway captured the transaction.
func (v *VerificationResult) Success() bool {
	return v.Status == "success"
}

// IPaymentGateway defines the verify-by-reference contract the order
// workflow expects from the payment processor.
type IPaymentGateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*VerificationResult, error)
}

// PaystackGateway implements IPaymentGateway against the Paystack API.
type PaystackGateway struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// NewPaystackGateway creates a new PaystackGateway instance.
func NewPaystackGateway(baseURL, secretKey string) IPaymentGateway {
	return &PaystackGateway{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string      `json:"status"`
		Amount    int64       `json:"amount"`
		Reference string      `json:"reference"`
		Metadata  OrderIntent `json:"metadata"`
	} `json:"data"`
}

// VerifyTransaction calls GET /transaction/verify/:reference.
func (g *PaystackGateway) VerifyTransaction(ctx context.Context, reference string) (*VerificationResult, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", g.baseURL, reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, detail)
	}

	var payload paystackVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w", err)
	}
	if !payload.Status {
		return nil, fmt.Errorf("payment gateway rejected verification: %s", payload.Message)
	}

	return &VerificationResult{
		Status:    payload.Data.Status,
		Amount:    payload.Data.Amount,
		Reference: payload.Data.Reference,
		Intent:    payload.Data.Metadata,
	}, nil
}
