package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"balitai/types"
)

// ScanClient is a thin HTTP client for the scan API
type ScanClient struct {
	baseURL string
	client  *http.Client
}

// NewScanClient creates a new scan API client
func NewScanClient(baseURL string) *ScanClient {
	return &ScanClient{
		baseURL: baseURL,
		client: &http.Client{
			// Scans fetch live feeds and call the summarizer, so they run long
			Timeout: 3 * time.Minute,
		},
	}
}

// Health checks whether the server is reachable.
func (c *ScanClient) Health() error {
	resp, err := c.client.Get(c.baseURL + "/api/health")
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return nil
}

// Scan triggers a full scan and waits for the response.
func (c *ScanClient) Scan(req types.ScanRequest) (*types.ScanResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/api/scan", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to run scan: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var scan types.ScanResponse
	if err := json.NewDecoder(resp.Body).Decode(&scan); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &scan, nil
}
