package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tomide-adesanmi/company-enricher/internal/common"
)

// HTTPEnricher calls the enrichment collaborator over HTTP: one POST per batch,
// JSON in, JSON out, response validated against the contract schema before use.
type HTTPEnricher struct {
	client *http.Client
	url    string
	apiKey string
	logger *slog.Logger
}

func NewHTTPEnricher(url, apiKey string, timeout time.Duration, logger *slog.Logger) *HTTPEnricher {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &HTTPEnricher{
		client: &http.Client{Timeout: timeout},
		url:    url,
		apiKey: apiKey,
		logger: logger,
	}
}

type enrichRequest struct {
	Rows []Row `json:"rows"`
}

type enrichResponse struct {
	Results []Result `json:"results"`
}

func (e *HTTPEnricher) Enrich(ctx context.Context, rows []Row) ([]Result, error) {
	headers := map[string]string{}
	if e.apiKey != "" {
		headers["Authorization"] = "Bearer " + e.apiKey
	}

	raw, _, err := sendJSON(ctx, e.client, e.url, enrichRequest{Rows: rows}, headers, e.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCollaborator, err)
	}

	if err := ValidateJSONAgainstSchema(responseSchema, raw); err != nil {
		e.logger.Error("enrich.response.invalid", "error", err)
		return nil, fmt.Errorf("%w: invalid response: %v", common.ErrCollaborator, err)
	}

	var resp enrichResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", common.ErrCollaborator, err)
	}
	if len(resp.Results) != len(rows) {
		return nil, fmt.Errorf("%w: row count mismatch: sent %d, got %d", common.ErrCollaborator, len(rows), len(resp.Results))
	}
	return resp.Results, nil
}

// sendJSON sends a JSON request to a full URL with optional headers and returns
// the raw response body. It does not assume any provider; callers decide the
// URL and headers.
func sendJSON(ctx context.Context, client *http.Client, url string, body any, headers map[string]string, logger *slog.Logger) ([]byte, int, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		logger.Error("enrich.http.encode_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		logger.Error("enrich.http.build_request_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	// Default headers; allow caller overrides.
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logger.Info("enrich.http.request",
		"req_id", reqID,
		"url", url,
		"content_length", len(bs),
	)

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("enrich.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, 0, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Warn("enrich.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	logger.Info("enrich.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
