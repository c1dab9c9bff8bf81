package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/scribepipe/scribepipe/internal/common"
)

// statusError classifies a non-2xx response. Authentication failures
// mean a bad credential, not a flaky upstream, so they map to the
// configuration kind; everything else is transient provider trouble.
func statusError(backend string, status int, body []byte) error {
	msg := fmt.Sprintf("%s status %d: %s", backend, status, truncateBody(body, 512))
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return common.ConfigurationError(msg, nil)
	}
	return common.ProviderError(msg, nil)
}

func transportError(backend string, err error) error {
	return common.ProviderError(fmt.Sprintf("%s request failed", backend), err)
}

func truncateBody(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "...(truncated)"
}

// doJSON sends a request with the given headers and returns the
// response body, classifying failures by error kind.
func doJSON(ctx context.Context, client *http.Client, backend, method, url string, headers map[string]string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return doRaw(client, backend, req)
}

// doRaw executes a prepared request and reads the full body.
func doRaw(client *http.Client, backend string, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, transportError(backend, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, transportError(backend, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(backend, resp.StatusCode, buf.Bytes())
	}
	return buf.Bytes(), nil
}
