package lyrics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"lyrics-server/internal/types"
)

// Client calls the external lyrics generation API. The API is untrusted:
// every failure mode is reported as an error and nothing is retried.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	log        logrus.FieldLogger
}

// NewClient returns a client for the endpoint at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		log:        logrus.StandardLogger(),
	}
}

// WithLogger replaces the diagnostic logger
func (c *Client) WithLogger(log logrus.FieldLogger) *Client {
	c.log = log
	return c
}

// RequestURL builds the GET URL for prompt
func (c *Client) RequestURL(prompt string) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("prompt", prompt)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch issues one GET for prompt and decodes the response
func (c *Client) Fetch(ctx context.Context, prompt string) (*types.LyricsResponse, error) {
	reqURL, err := c.RequestURL(prompt)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.WithField("url", reqURL).Debug("Requesting lyrics")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lyrics request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection goes back to the pool
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("lyrics api: HTTP %d", resp.StatusCode)
	}

	var out types.LyricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode lyrics response: %w", err)
	}
	return &out, nil
}
