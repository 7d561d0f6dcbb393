package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mintmate/internal/util"
)

const defaultProviderTimeout = 3 * time.Second

// jsonHttpClient issues GETs against provider APIs. Anything other than a
// 2xx JSON body is an error so callers can treat upstream trouble uniformly.
type jsonHttpClient struct {
	Client  *http.Client
	Timeout time.Duration
}

func newJsonHttpClient(client *http.Client, timeout time.Duration) jsonHttpClient {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return jsonHttpClient{
		Client:  client,
		Timeout: timeout,
	}
}

func (c jsonHttpClient) getJson(ctx context.Context, url string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	response, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("failed with status code %d: %s", response.StatusCode, truncate(string(responseBytes), 200))
	}

	contentType := response.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("expected json response, got content type %q", contentType)
	}

	err = json.Unmarshal(responseBytes, out)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func unixToDate(ts int64) string {
	return util.FormatDate(time.Unix(ts, 0))
}
