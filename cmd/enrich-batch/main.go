package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/enrich"
	"github.com/tomide-adesanmi/company-enricher/internal/entity"
	"github.com/tomide-adesanmi/company-enricher/internal/ingest"
	"github.com/tomide-adesanmi/company-enricher/internal/pipeline"
	"github.com/tomide-adesanmi/company-enricher/internal/queue"
	repo "github.com/tomide-adesanmi/company-enricher/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file  = flag.String("file", "", "company-list file to enrich (csv or xlsx, required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults next to input)")
		owner = flag.String("owner", "batch", "owner identifier recorded on the upload")
		stub  = flag.Bool("stub", false, "use the stub enricher instead of ENRICH_URL")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}
	if *out == "" {
		base := strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
		*out = filepath.Join(filepath.Dir(*file), base+"_enriched.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Everything runs against a throwaway in-memory database.
	entc, err := repo.OpenSQLite("file:enrichbatch?mode=memory&cache=shared", logger)
	if err != nil {
		printError("Error: opening in-memory database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()
	if err := entc.Schema.Create(ctx); err != nil {
		printError("Error: creating schema: %v\n", err)
		os.Exit(1)
	}

	uploads := repo.NewUploadRepository(entc, logger)
	jobs := repo.NewJobRepository(entc, logger)
	records := repo.NewRecordRepository(entc, logger)

	var enricher enrich.Enricher
	if *stub {
		enricher = enrich.NewStub()
	} else {
		cfg := common.LoadConfig()
		if cfg.Enrich.URL == "" {
			printError("Error: ENRICH_URL is required unless --stub is set\n")
			os.Exit(1)
		}
		enricher = enrich.NewHTTPEnricher(cfg.Enrich.URL, cfg.Enrich.APIKey, cfg.Enrich.Timeout, logger)
	}

	ingestor := ingest.NewUsecase(uploads, logger)
	res, err := ingestor.IngestPath(ctx, *owner, *file)
	if err != nil {
		printError("Error: ingesting %s: %v\n", *file, err)
		os.Exit(1)
	}
	logger.Info("ingested", "upload_id", res.UploadID, "rows", res.RowCount)

	manager := queue.NewManager(uploads, jobs, 0, logger)
	uploadID := uuid.MustParse(res.UploadID)
	job, err := manager.AdmitUpload(ctx, uploadID)
	if err != nil {
		printError("Error: queueing upload: %v\n", err)
		os.Exit(1)
	}

	executor := pipeline.NewExecutor(uploads, jobs, records, enricher, logger)
	if err := executor.ProcessJob(ctx, job.ID); err != nil {
		printError("Error: pipeline failed: %v\n", err)
		os.Exit(1)
	}

	enriched, err := records.ListByUpload(ctx, uploadID)
	if err != nil {
		printError("Error: loading enriched records: %v\n", err)
		os.Exit(1)
	}
	if err := writeXLSX(*out, enriched); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d enriched records to %s\n", len(enriched), *out)
}

func writeXLSX(path string, records []*entity.EnrichedRecord) error {
	f := excelize.NewFile()
	const sheet = "Enriched"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Company", "Website", "Country", "City", "Size", "Industry", "Revenue", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, r := range records {
		values := []string{r.CompanyName, r.Website, r.Country, r.City, r.Size, r.Industry, r.Revenue, r.EnrichmentStatus}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	return f.SaveAs(path)
}
