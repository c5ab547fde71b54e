package enrich

import (
	"context"
)

// Row is one normalized input row handed to the collaborator; keys are the
// canonical column names from constants.ColumnAliases.
type Row map[string]string

// Result is one collaborator output row: the input fields plus the three
// enrichment fields and the per-row outcome flag.
type Result struct {
	CompanyName string `json:"company_name"`
	Website     string `json:"website,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Size        string `json:"size,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Revenue     string `json:"revenue,omitempty"`
	Status      string `json:"status"`
}

// Enricher is the external lookup collaborator. One call covers a whole batch.
// Implementations must be safe to call repeatedly with the same input, since
// retries re-run the entire pipeline.
type Enricher interface {
	Enrich(ctx context.Context, rows []Row) ([]Result, error)
}
