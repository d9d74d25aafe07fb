package platforms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/querydev/devsearch/pkg/shared/stringutil"
)

// getJSON issues a GET request and returns the body and status code. The
// status code is returned even on a non-2xx response so callers can branch
// on it (401 auth fallback, 404 not-found-as-success).
func getJSON(ctx context.Context, url string, headers map[string]string, timeoutSecs int) ([]byte, int, error) {
	client := &http.Client{Timeout: time.Duration(timeoutSecs) * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("http %d: %s", resp.StatusCode, truncateBody(data))
	}
	return data, resp.StatusCode, nil
}

// Upstream error bodies can be large HTML pages; keep error text short.
func truncateBody(data []byte) string {
	const max = 256
	return stringutil.Truncate(string(data), max)
}
