package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client fetches the dataset index from the catalog service.
type Client struct {
	httpClient *http.Client
	indexURL   string
}

func NewClient(indexURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		indexURL:   indexURL,
	}
}

type indexResponse struct {
	Datasets []Dataset `json:"datasets"`
}

func (c *Client) FetchDatasets(ctx context.Context) ([]Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.indexURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build index request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset index returned status %d", resp.StatusCode)
	}

	var index indexResponse
	if err := json.NewDecoder(resp.Body).Decode(&index); err != nil {
		return nil, fmt.Errorf("failed to decode dataset index: %w", err)
	}

	return index.Datasets, nil
}
