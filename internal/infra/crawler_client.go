package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"swoon/internal/models/request_models"
	"swoon/pkg/tilegrid"
)

// CrawlerClient talks to the external crawler service, which owns all
// fetch/extract mechanics. The core only hands it a tile's clipped bounds
// and receives raw venue records back.
type CrawlerClient struct {
	baseURL string
	client  *http.Client
}

func NewCrawlerClient(baseURL string) *CrawlerClient {
	return &CrawlerClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (c *CrawlerClient) FetchTile(ctx context.Context, tile tilegrid.Tile) ([]request_models.RawVenueRecord, error) {
	body, err := json.Marshal(tile.Clipped)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/collect", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crawler returned status %d for tile %s", resp.StatusCode, tile.Key)
	}

	var records []request_models.RawVenueRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
