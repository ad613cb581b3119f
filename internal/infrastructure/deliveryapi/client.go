package deliveryapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"smartride/internal/usecase/interfaces"

	"github.com/goccy/go-json"
)

var ErrNoDeliveryIdentifier = errors.New("delivery response carried no recognizable identifier")

// Client is the outbound HTTP client for the remote delivery-creation API.
//
// The API's response body is loosely shaped: the delivery object may appear
// at several nesting levels. extractDeliveryID walks the known shapes and
// fails loudly when none matches.

type Client struct {
	http    *http.Client
	baseURL string
}

var _ interfaces.IDeliveryAPI = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Create(ctx context.Context, req interfaces.DeliveryCreateRequest) (string, error) {
	var (
		body        io.Reader
		contentType string
		err         error
	)
	if req.Image != nil {
		body, contentType, err = c.multipartBody(req)
	} else {
		body, contentType, err = c.jsonBody(req)
	}
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/deliveries", body)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", contentType)
	if req.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.AuthToken)
	}
	log.Printf("[delivery][client] create start multipart=%t", req.Image != nil)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("delivery api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	id := extractDeliveryID(raw)
	if id == "" {
		log.Printf("[delivery][client] no identifier in response body_len=%d", len(raw))
		return "", ErrNoDeliveryIdentifier
	}
	log.Printf("[delivery][client] create success delivery_id=%s", id)
	return id, nil
}

func (c *Client) Cancel(ctx context.Context, authToken, deliveryID string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/deliveries/"+deliveryID+"/cancel", nil)
	if err != nil {
		return err
	}
	if authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delivery api cancel returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	log.Printf("[delivery][client] cancel success delivery_id=%s", deliveryID)
	return nil
}

func (c *Client) jsonBody(req interfaces.DeliveryCreateRequest) (io.Reader, string, error) {
	b, err := json.Marshal(deliveryPayload(req))
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(b), "application/json", nil
}

func (c *Client) multipartBody(req interfaces.DeliveryCreateRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	payload, err := json.Marshal(deliveryPayload(req))
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField("payload", string(payload)); err != nil {
		return nil, "", err
	}

	part, err := w.CreateFormFile("image", req.Image.FileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.Image.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func deliveryPayload(req interfaces.DeliveryCreateRequest) map[string]any {
	return map[string]any{
		"sender": map[string]any{
			"name":  req.SenderName,
			"phone": req.SenderPhone,
		},
		"recipient": map[string]any{
			"name":  req.RecipientName,
			"phone": req.RecipientPhone,
			"email": req.RecipientEmail,
		},
		"pickup_address":   addressPayload(req),
		"delivery_address": deliveryAddressPayload(req),
		"package": map[string]any{
			"description":     req.PackageDescription,
			"dimensions":      req.Dimensions,
			"weight_category": string(req.WeightCategory),
			"declared_value":  req.DeclaredValue,
		},
	}
}

func addressPayload(req interfaces.DeliveryCreateRequest) map[string]any {
	a := req.PickupAddress
	return map[string]any{
		"line":        a.Line,
		"city":        a.City,
		"state":       a.State,
		"postal_code": a.PostalCode,
		"country":     a.Country,
		"latitude":    a.Latitude,
		"longitude":   a.Longitude,
	}
}

func deliveryAddressPayload(req interfaces.DeliveryCreateRequest) map[string]any {
	a := req.DeliveryAddress
	return map[string]any{
		"line":        a.Line,
		"city":        a.City,
		"state":       a.State,
		"postal_code": a.PostalCode,
		"country":     a.Country,
		"latitude":    a.Latitude,
		"longitude":   a.Longitude,
	}
}

// extractDeliveryID tolerates the known legacy response shapes:
// {id}, {_id}, {data:{id|_id}}, {delivery:{id|_id}}, {data:{delivery:{id|_id}}}.
func extractDeliveryID(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}

	if id := idField(body); id != "" {
		return id
	}
	for _, key := range []string{"data", "delivery"} {
		nested, ok := body[key].(map[string]any)
		if !ok {
			continue
		}
		if id := idField(nested); id != "" {
			return id
		}
		if inner, ok := nested["delivery"].(map[string]any); ok {
			if id := idField(inner); id != "" {
				return id
			}
		}
	}
	return ""
}

func idField(m map[string]any) string {
	for _, key := range []string{"id", "_id"} {
		if v, ok := m[key]; ok {
			switch id := v.(type) {
			case string:
				if strings.TrimSpace(id) != "" {
					return id
				}
			case float64:
				return fmt.Sprintf("%.0f", id)
			}
		}
	}
	return ""
}
