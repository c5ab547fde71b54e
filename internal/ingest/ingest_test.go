package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
)

func TestParseRowsCSV(t *testing.T) {
	content := []byte("Company Name,Website,Country\nAcme Corp,acme.example,US\nGlobex,,DE\nInitech,initech.example\n")
	rows, err := ParseRows("csv", content)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Acme Corp", rows[0]["Company Name"])
	assert.Equal(t, "acme.example", rows[0]["Website"])
	assert.Equal(t, "US", rows[0]["Country"])

	// Missing cells become empty values, not missing keys.
	assert.Equal(t, "", rows[1]["Website"])
	assert.Equal(t, "", rows[2]["Country"], "short row padded against the header")
}

func TestParseRowsCSVEmpty(t *testing.T) {
	_, err := ParseRows("csv", []byte(""))
	require.Error(t, err)

	// Header only is a valid file with zero data rows.
	rows, err := ParseRows("csv", []byte("company_name,website\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRowsXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]interface{}{
		{"company_name", "city"},
		{"Acme Corp", "Austin"},
		{"Globex", "Berlin"},
	}
	for i, rec := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rec))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ParseRows("xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme Corp", rows[0]["company_name"])
	assert.Equal(t, "Berlin", rows[1]["city"])
}

func TestParseRowsUnsupportedExtension(t *testing.T) {
	_, err := ParseRows("pdf", []byte("%PDF-1.4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestIngestContentDeduplicatesByHash(t *testing.T) {
	logger := slog.Default()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := repository.OpenSQLite(dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))

	uc := NewUsecase(repository.NewUploadRepository(client, logger), logger)
	ctx := context.Background()
	content := []byte("company_name\nAcme Corp\n")

	first, err := uc.IngestContent(ctx, "user-a", "list.csv", content)
	require.NoError(t, err)
	assert.False(t, first.Deduplicated)
	assert.Equal(t, 1, first.RowCount)
	assert.Equal(t, "csv", first.FileExt)

	// Same bytes under a different name still dedup to the same upload.
	again, err := uc.IngestContent(ctx, "user-a", "renamed.csv", content)
	require.NoError(t, err)
	assert.True(t, again.Deduplicated)
	assert.Equal(t, first.UploadID, again.UploadID)

	// Another user's identical file is their own upload.
	other, err := uc.IngestContent(ctx, "user-b", "list.csv", content)
	require.NoError(t, err)
	assert.False(t, other.Deduplicated)
	assert.NotEqual(t, first.UploadID, other.UploadID)
}

func TestIngestContentRejectsBadInput(t *testing.T) {
	uc := NewUsecase(nil, slog.Default())

	_, err := uc.IngestContent(context.Background(), "user-a", "list.txt", []byte("x"))
	require.Error(t, err)

	_, err = uc.IngestContent(context.Background(), "  ", "list.csv", []byte("company_name\nAcme\n"))
	require.Error(t, err)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "csv", constants.NormalizeExt(".CSV"))
	assert.Equal(t, "xlsx", constants.NormalizeExt("xlsx"))
	assert.Equal(t, "", constants.NormalizeExt(""))
}
