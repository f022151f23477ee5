package submit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends race results to the StrideCoach server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the StrideCoach server.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: serverURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendRaceResult POSTs a race result to the athlete's races endpoint.
// Retries up to 3 times with exponential backoff on failure.
func (c *Client) SendRaceResult(athleteID string, result RaceResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling race result: %w", err)
	}

	url := c.serverURL + "/api/v1/athletes/" + athleteID + "/races"

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK {
			return nil
		}
		// Client errors won't improve on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return fmt.Errorf("race submit rejected (status %d): %s", resp.StatusCode, body)
		}
		lastErr = fmt.Errorf("race submit failed (status %d): %s", resp.StatusCode, body)
	}

	return fmt.Errorf("after 3 attempts: %w", lastErr)
}
