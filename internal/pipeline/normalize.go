package pipeline

import (
	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/internal/enrich"
)

// NormalizeRows maps raw header spellings onto canonical column keys using the
// static alias table and drops rows missing the mandatory identifying field.
// Columns outside the alias table are discarded; the upload keeps the original.
func NormalizeRows(raw []map[string]string) []enrich.Row {
	out := make([]enrich.Row, 0, len(raw))
	for _, r := range raw {
		row := enrich.Row{}
		for k, v := range r {
			canonical, ok := constants.CanonicalColumn(k)
			if !ok || v == "" {
				continue
			}
			// first non-empty spelling wins on duplicate headers
			if _, exists := row[canonical]; !exists {
				row[canonical] = v
			}
		}
		if row[constants.MandatoryColumn] == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}
