// =============================================================================
// Sales Analytics System - Catalog Provider
// =============================================================================
//
// This module fetches the remote product catalog used for enrichment. The
// provider fails soft: any transport error, non-success status, or decode
// failure is logged and reported as an empty catalog, never as a pipeline
// error. An empty catalog simply means "no enrichment possible".
//
// There are deliberately no retries or backoff here; a caller-level timeout
// is the only resilience mechanism.
//
// =============================================================================

package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// Client fetches product records from the catalog API.
type Client struct {
	url        string
	limit      int
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a catalog client. url is the products endpoint, limit
// caps the number of records requested, and timeout bounds the whole call.
func NewClient(url string, limit int, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		url:        url,
		limit:      limit,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// catalogResponse mirrors the API payload shape: {"products": [...]}.
type catalogResponse struct {
	Products []types.CatalogEntry `json:"products"`
}

// FetchAll retrieves the product catalog. On any failure it logs a warning
// and returns an empty slice.
func (c *Client) FetchAll(ctx context.Context) []types.CatalogEntry {
	url := fmt.Sprintf("%s?limit=%d", c.url, c.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("Failed to build catalog request")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("Failed to fetch product catalog")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("Catalog API returned non-success status")
		return nil
	}

	var payload catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("Failed to decode catalog response")
		return nil
	}

	c.log.Debug().Int("products", len(payload.Products)).Msg("Fetched product catalog")
	return payload.Products
}
