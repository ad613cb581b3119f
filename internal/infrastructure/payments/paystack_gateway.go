package payments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"smartride/internal/domain/entities"
	"smartride/internal/usecase/interfaces"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

var ErrMissingPaystackSecretKey = errors.New("missing PAYSTACK_SECRET_KEY")
var ErrPaystackGatewayNotConfigured = errors.New("paystack gateway not configured")

const defaultPaystackBaseURL = "https://api.paystack.co"

// PaystackGateway talks to the hosted-checkout payment provider.
//
// The provider's responses are loosely shaped; normalization into
// entities.PaymentInit / entities.PaymentVerification happens here and only
// here, so the rest of the code sees a strict result type.

type PaystackGateway struct {
	client    *http.Client
	secretKey string
	baseURL   string
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*PaystackGateway)(nil)

func NewPaystackGateway(secretKey string) (*PaystackGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PaystackGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing PAYSTACK_SECRET_KEY")
		return nil, ErrMissingPaystackSecretKey
	}

	baseURL := strings.TrimRight(os.Getenv("PAYSTACK_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultPaystackBaseURL
	}
	log.Printf("[payment][gateway] paystack client initialized base_url=%s", baseURL)

	return &PaystackGateway{
		client:    &http.Client{Timeout: 30 * time.Second},
		secretKey: secretKey,
		baseURL:   baseURL,
	}, nil
}

func (g *PaystackGateway) Initialize(ctx context.Context, req interfaces.PaymentInitRequest) (entities.PaymentInit, error) {
	if g != nil && g.mockMode {
		ref := "MOCK-" + uuid.NewString()
		log.Printf("[payment][gateway] mock initialize reference=%s amount=%d", ref, req.Amount)
		return entities.PaymentInit{
			AuthorizationURL: "https://checkout.example.test/" + ref,
			Reference:        ref,
		}, nil
	}
	if g == nil || g.client == nil {
		return entities.PaymentInit{}, ErrPaystackGatewayNotConfigured
	}

	body, err := json.Marshal(map[string]any{
		"amount":       req.Amount,
		"currency":     req.Currency,
		"email":        req.Email,
		"callback_url": req.CallbackURL,
		"metadata": map[string]any{
			"delivery_id": req.DeliveryID,
		},
	})
	if err != nil {
		return entities.PaymentInit{}, err
	}
	log.Printf("[payment][gateway] initialize start delivery_id=%s amount=%d", req.DeliveryID, req.Amount)

	raw, err := g.post(ctx, "/transaction/initialize", body)
	if err != nil {
		return entities.PaymentInit{}, err
	}

	init := normalizeInitResponse(raw)
	if init.AuthorizationURL == "" && init.Reference == "" {
		log.Printf("[payment][gateway] initialize response unusable delivery_id=%s body_len=%d", req.DeliveryID, len(raw))
		return entities.PaymentInit{}, fmt.Errorf("initialize response carried neither authorization url nor reference")
	}
	log.Printf("[payment][gateway] initialize success delivery_id=%s reference=%s", req.DeliveryID, init.Reference)
	return init, nil
}

func (g *PaystackGateway) Verify(ctx context.Context, paymentID string) (entities.PaymentVerification, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock verify payment_id=%s", paymentID)
		return entities.PaymentVerification{Success: true, RawStatus: "success"}, nil
	}
	if g == nil || g.client == nil {
		return entities.PaymentVerification{}, ErrPaystackGatewayNotConfigured
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/transaction/verify/"+paymentID, nil)
	if err != nil {
		return entities.PaymentVerification{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return entities.PaymentVerification{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PaymentVerification{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entities.PaymentVerification{}, fmt.Errorf("verify returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	v := normalizeVerifyResponse(raw)
	log.Printf("[payment][gateway] verify done payment_id=%s success=%t status=%s", paymentID, v.Success, v.RawStatus)
	return v, nil
}

func (g *PaystackGateway) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Status and body travel up so the user alert can show them.
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

// normalizeInitResponse tolerates the known legacy shapes of the initialize
// response: fields at the top level or nested under "data".
func normalizeInitResponse(raw []byte) entities.PaymentInit {
	var envelope struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
		AccessCode       string `json:"access_code"`
		Data             struct {
			AuthorizationURL string `json:"authorization_url"`
			Reference        string `json:"reference"`
			AccessCode       string `json:"access_code"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return entities.PaymentInit{}
	}

	init := entities.PaymentInit{
		AuthorizationURL: envelope.AuthorizationURL,
		Reference:        envelope.Reference,
		AccessCode:       envelope.AccessCode,
	}
	if init.AuthorizationURL == "" {
		init.AuthorizationURL = envelope.Data.AuthorizationURL
	}
	if init.Reference == "" {
		init.Reference = envelope.Data.Reference
	}
	if init.AccessCode == "" {
		init.AccessCode = envelope.Data.AccessCode
	}
	return init
}

// normalizeVerifyResponse tolerates the known legacy shapes of the verify
// response: a boolean success flag, a textual status, or both, nested or not,
// with the delivery id hiding in metadata under either naming convention.
func normalizeVerifyResponse(raw []byte) entities.PaymentVerification {
	var envelope struct {
		Status  any    `json:"status"`
		Success *bool  `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Status   string `json:"status"`
			Message  string `json:"gateway_response"`
			Metadata struct {
				DeliveryID  string `json:"delivery_id"`
				DeliveryID2 string `json:"deliveryId"`
			} `json:"metadata"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return entities.PaymentVerification{}
	}

	v := entities.PaymentVerification{Message: envelope.Message}

	switch status := envelope.Status.(type) {
	case bool:
		// Envelope-level status is a transport flag, not the payment outcome.
		v.Success = status
	case string:
		v.RawStatus = status
		v.Success = strings.EqualFold(status, "success")
	}
	if envelope.Data.Status != "" {
		v.RawStatus = envelope.Data.Status
		v.Success = strings.EqualFold(envelope.Data.Status, "success")
	}
	if envelope.Success != nil {
		v.Success = *envelope.Success
	}
	if v.Message == "" {
		v.Message = envelope.Data.Message
	}

	v.DeliveryID = envelope.Data.Metadata.DeliveryID
	if v.DeliveryID == "" {
		v.DeliveryID = envelope.Data.Metadata.DeliveryID2
	}
	return v
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYSTACK_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
