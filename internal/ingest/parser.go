package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tomide-adesanmi/company-enricher/constants"
)

// ParseRows converts a raw company-list file into ordered row maps keyed by the
// file's own header spellings. Header normalization happens later, in the
// pipeline's prepare stage; the upload stores the file verbatim.
func ParseRows(ext string, content []byte) ([]map[string]string, error) {
	switch constants.NormalizeExt(ext) {
	case "csv":
		return parseCSV(content)
	case "xlsx":
		return parseXLSX(content)
	default:
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

func parseCSV(content []byte) ([]map[string]string, error) {
	rd := csv.NewReader(bytes.NewReader(content))
	rd.FieldsPerRecord = -1 // ragged rows are dropped below, not rejected

	header, err := rd.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv file")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []map[string]string
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, zipRow(header, rec))
	}
	return rows, nil
}

func parseXLSX(content []byte) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("empty xlsx sheet")
	}

	header := all[0]
	rows := make([]map[string]string, 0, len(all)-1)
	for _, rec := range all[1:] {
		rows = append(rows, zipRow(header, rec))
	}
	return rows, nil
}

func zipRow(header, rec []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if i < len(rec) {
			row[h] = strings.TrimSpace(rec[i])
		} else {
			row[h] = ""
		}
	}
	return row
}
