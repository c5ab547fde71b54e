package constants

import "strings"

// Canonical column keys used by the pipeline and the enrichment collaborator.
const (
	ColumnCompanyName = "company_name"
	ColumnWebsite     = "website"
	ColumnCountry     = "country"
	ColumnCity        = "city"
)

// ColumnAliases maps each canonical key to the input spellings accepted during
// normalization. Matching is case-insensitive after trimming; see NormalizeHeader.
var ColumnAliases = map[string][]string{
	ColumnCompanyName: {"company_name", "company name", "company", "name", "organisation", "organization"},
	ColumnWebsite:     {"website", "web site", "url", "domain", "homepage"},
	ColumnCountry:     {"country", "country_name", "country name"},
	ColumnCity:        {"city", "town", "location"},
}

// MandatoryColumn is the one field a row must carry to survive normalization.
const MandatoryColumn = ColumnCompanyName

// aliasIndex is the inverted form of ColumnAliases, built once.
var aliasIndex = func() map[string]string {
	idx := make(map[string]string)
	for canonical, spellings := range ColumnAliases {
		for _, s := range spellings {
			idx[NormalizeHeader(s)] = canonical
		}
	}
	return idx
}()

// NormalizeHeader lowercases a raw header and collapses separator characters
// so "Company Name", "company-name" and "COMPANY_NAME" compare equal.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "-", " ")
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}

// CanonicalColumn resolves a raw header to its canonical key.
// Returns ("", false) for headers outside the alias table.
func CanonicalColumn(raw string) (string, bool) {
	c, ok := aliasIndex[NormalizeHeader(raw)]
	return c, ok
}
