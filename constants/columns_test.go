package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Company Name":    "company name",
		"COMPANY_NAME":    "company name",
		"company-name":    "company name",
		"  Company-Name ": "company name",
		"Web Site":        "web site",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeHeader(in), "input %q", in)
	}
}

func TestCanonicalColumn(t *testing.T) {
	for raw, want := range map[string]string{
		"Company Name": ColumnCompanyName,
		"organisation": ColumnCompanyName,
		"NAME":         ColumnCompanyName,
		"URL":          ColumnWebsite,
		"homepage":     ColumnWebsite,
		"Country_Name": ColumnCountry,
		"Town":         ColumnCity,
	} {
		got, ok := CanonicalColumn(raw)
		assert.True(t, ok, "expected %q to resolve", raw)
		assert.Equal(t, want, got)
	}

	_, ok := CanonicalColumn("employee_count")
	assert.False(t, ok)
}
