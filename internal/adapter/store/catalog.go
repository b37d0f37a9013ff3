package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shopassist/internal/domain/entity"
)

// DummyJSONSource fetches the product catalog from the DummyJSON API.
// limit=0 requests the complete set instead of the paginated default.
type DummyJSONSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewDummyJSONSource(baseURL string) *DummyJSONSource {
	return &DummyJSONSource{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *DummyJSONSource) FetchAll(ctx context.Context) ([]entity.Product, error) {
	url := s.baseURL + "/products?limit=0"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrCatalogUnavailable, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: catalog returned status %d", entity.ErrCatalogUnavailable, resp.StatusCode)
	}

	var payload struct {
		Products []entity.Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed catalog payload: %v", entity.ErrCatalogUnavailable, err)
	}

	return payload.Products, nil
}
