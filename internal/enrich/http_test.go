package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
)

func testRows() []Row {
	return []Row{
		{constants.ColumnCompanyName: "Acme Corp", constants.ColumnWebsite: "acme.example"},
		{constants.ColumnCompanyName: "Globex"},
	}
}

func newEnricher(url string) *HTTPEnricher {
	return NewHTTPEnricher(url, "test-key", 5*time.Second, nil)
}

func TestHTTPEnricherSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req struct {
			Rows []Row `json:"rows"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		results := make([]map[string]string, len(req.Rows))
		for i, row := range req.Rows {
			results[i] = map[string]string{
				"company_name": row[constants.ColumnCompanyName],
				"size":         "201-500",
				"industry":     "Manufacturing",
				"revenue":      "$50M",
				"status":       "ok",
			}
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"results": results}))
	}))
	defer srv.Close()

	results, err := newEnricher(srv.URL).Enrich(context.Background(), testRows())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Acme Corp", results[0].CompanyName)
	assert.Equal(t, "201-500", results[0].Size)
	assert.Equal(t, "Manufacturing", results[0].Industry)
	assert.Equal(t, "$50M", results[0].Revenue)
	assert.Equal(t, "ok", results[1].Status)
}

func TestHTTPEnricherNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newEnricher(srv.URL).Enrich(context.Background(), testRows())
	require.ErrorIs(t, err, common.ErrCollaborator)
	assert.Equal(t, common.KindCollaborator, common.ClassifyError(err))
}

func TestHTTPEnricherRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"not json":               `results galore`,
		"results not array":      `{"results": 42}`,
		"missing company_name":   `{"results": [{"status": "ok"}, {"status": "ok"}]}`,
		"status outside the set": `{"results": [{"company_name": "Acme Corp", "status": "maybe"}, {"company_name": "Globex", "status": "ok"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newEnricher(srv.URL).Enrich(context.Background(), testRows())
			require.ErrorIs(t, err, common.ErrCollaborator)
		})
	}
}

func TestHTTPEnricherRowCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"company_name": "Acme Corp", "status": "ok"}]}`))
	}))
	defer srv.Close()

	_, err := newEnricher(srv.URL).Enrich(context.Background(), testRows())
	require.ErrorIs(t, err, common.ErrCollaborator)
	assert.Contains(t, err.Error(), "row count mismatch")
}

func TestHTTPEnricherUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newEnricher(srv.URL).Enrich(context.Background(), testRows())
	require.ErrorIs(t, err, common.ErrCollaborator)
	assert.True(t, common.IsRetryable(common.ClassifyError(err)))
}
