package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/skinpulse/skinpulse/internal/catalog"
	"github.com/skinpulse/skinpulse/internal/domain"
)

const _defaultTimeout = 15 * time.Second

// SkinsClient fetches the full skin-metadata catalog.
type SkinsClient struct {
	httpClient *http.Client
	baseURL    string
	log        domain.Logger
}

func NewSkinsClient(baseURL string, log domain.Logger) *SkinsClient {
	return &SkinsClient{
		httpClient: &http.Client{
			Timeout: _defaultTimeout,
		},
		baseURL: baseURL,
		log:     log,
	}
}

func (c *SkinsClient) FetchAll(ctx context.Context) ([]catalog.RawSkin, error) {
	body, err := fetch(ctx, c.httpClient, c.baseURL+"/skins.json")
	if err != nil {
		return nil, fmt.Errorf("fetch skins: %w", err)
	}

	var skins []catalog.RawSkin
	if err := json.Unmarshal(body, &skins); err != nil {
		return nil, fmt.Errorf("unmarshal skins: %w", err)
	}

	c.log.Debug("skin metadata fetched", "count", len(skins))

	return skins, nil
}

func fetch(ctx context.Context, httpClient *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}
