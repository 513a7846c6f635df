package client

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
)

// ListingClient fetches the live price-listing feed.
type ListingClient struct {
	httpClient *http.Client
	baseURL    string
	log        domain.Logger
}

func NewListingClient(baseURL string, log domain.Logger) *ListingClient {
	return &ListingClient{
		httpClient: &http.Client{
			Timeout: _defaultTimeout,
		},
		baseURL: baseURL,
		log:     log,
	}
}

func (c *ListingClient) FetchListing(ctx context.Context) ([]entity.ListingEntry, error) {
	body, err := fetch(ctx, c.httpClient, c.baseURL+"/items")
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	var entries []entity.ListingEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal listing: %w", err)
	}

	c.log.Debug("price listing fetched", "count", len(entries))

	return entries, nil
}
