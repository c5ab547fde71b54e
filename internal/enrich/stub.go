package enrich

import (
	"context"

	"github.com/tomide-adesanmi/company-enricher/constants"
)

// Stub is a deterministic Enricher for tests and the offline batch mode.
type Stub struct {
	Size     string
	Industry string
	Revenue  string
	// Err, when set, is returned instead of results (simulates collaborator outages).
	Err error
	// Calls counts invocations; reads are only safe after processing settles.
	Calls int
}

func NewStub() *Stub {
	return &Stub{Size: "51-200", Industry: "Tech", Revenue: "$10M"}
}

func (s *Stub) Enrich(_ context.Context, rows []Row) ([]Result, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]Result, len(rows))
	for i, r := range rows {
		out[i] = Result{
			CompanyName: r[constants.ColumnCompanyName],
			Website:     r[constants.ColumnWebsite],
			Country:     r[constants.ColumnCountry],
			City:        r[constants.ColumnCity],
			Size:        s.Size,
			Industry:    s.Industry,
			Revenue:     s.Revenue,
			Status:      string(constants.RecordStatusOK),
		}
	}
	return out, nil
}
