package geocoding

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smartride/internal/domain/entities"
	"smartride/internal/usecase/interfaces"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

// PlacesClient implements address lookup against a places HTTP API with
// /autocomplete and /reverse endpoints.

type PlacesClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

var _ interfaces.IAddressLookup = (*PlacesClient)(nil)

func NewPlacesClient(baseURL, apiKey string) *PlacesClient {
	return &PlacesClient{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type placeResult struct {
	Label      string  `json:"label"`
	Line       string  `json:"line"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (c *PlacesClient) Autocomplete(ctx context.Context, query string) ([]entities.PlaceSuggestion, error) {
	q := url.Values{}
	q.Set("q", query)

	var out struct {
		Results []placeResult `json:"results"`
	}
	if err := c.get(ctx, "/autocomplete", q, &out); err != nil {
		return nil, err
	}
	log.Printf("[places][client] autocomplete query=%q hits=%d", query, len(out.Results))

	return lo.Map(out.Results, func(r placeResult, _ int) entities.PlaceSuggestion {
		return entities.PlaceSuggestion{
			Label:   r.Label,
			Address: toAddress(r),
		}
	}), nil
}

func (c *PlacesClient) Reverse(ctx context.Context, lat, lng float64) (entities.Address, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lng", fmt.Sprintf("%f", lng))

	var out placeResult
	if err := c.get(ctx, "/reverse", q, &out); err != nil {
		return entities.Address{}, err
	}
	return toAddress(out), nil
}

func (c *PlacesClient) get(ctx context.Context, path string, q url.Values, out any) error {
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("places api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.Unmarshal(raw, out)
}

func toAddress(r placeResult) entities.Address {
	line := r.Line
	if line == "" {
		line = r.Label
	}
	return entities.Address{
		Line:       line,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
	}
}
