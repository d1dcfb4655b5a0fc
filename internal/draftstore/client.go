// Package draftstore is an HTTP client for an external draft-store service
// implementing the store.Store contract.
package draftstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dgallion1/docstruct/internal/doctree"
	"github.com/dgallion1/docstruct/internal/export"
)

// Client communicates with the draft-store HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Get fetches a draft snapshot. A 404 means the draft does not exist and
// returns (nil, nil). The body goes through export.Import so a corrupt
// upstream payload is rejected instead of loaded.
func (c *Client) Get(ctx context.Context, draftID string) (*doctree.DocumentState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.draftURL(draftID), nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("draftstore get %s: %w", draftID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("draftstore get %s: unexpected status %d", draftID, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("draftstore get %s: read body: %w", draftID, err)
	}
	return export.Import(data)
}

// Put stores a draft snapshot.
func (c *Client) Put(ctx context.Context, draftID string, state *doctree.DocumentState) error {
	body, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("draftstore put %s: marshal: %w", draftID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.draftURL(draftID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("draftstore put %s: %w", draftID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("draftstore put %s: unexpected status %d", draftID, resp.StatusCode)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) draftURL(draftID string) string {
	return c.baseURL + "/drafts/" + url.PathEscape(draftID)
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
