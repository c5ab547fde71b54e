package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
)

// Usecase is the file-parsing collaborator: it turns an uploaded binary into an
// Upload row (status pending) holding the raw row sequence, deduplicated by hash.
type Usecase struct {
	Uploads     repository.UploadRepository
	AllowedExts map[string]struct{}
	Logger      *slog.Logger
}

func NewUsecase(uploads repository.UploadRepository, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{Uploads: uploads, Logger: logger}
}

func (u *Usecase) allowed(ext string) bool {
	ext = constants.NormalizeExt(ext)
	allow := u.AllowedExts
	if allow == nil {
		allow = constants.AllowedExtensions
	}
	_, ok := allow[ext]
	return ok
}

func (u *Usecase) IngestContent(ctx context.Context, ownerID, filename string, content []byte) (IngestionResult, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if ext == "" || !u.allowed(ext) {
		return IngestionResult{}, fmt.Errorf("unsupported or missing extension: %q", ext)
	}
	if strings.TrimSpace(ownerID) == "" {
		return IngestionResult{}, fmt.Errorf("owner id is required")
	}

	rows, err := ParseRows(ext, content)
	if err != nil {
		return IngestionResult{}, fmt.Errorf("parse %s: %w", filename, err)
	}

	sum := sha256.Sum256(content)
	now := time.Now().UTC()

	row, dedup, err := u.Uploads.UpsertByHash(ctx, ownerID, filepath.Base(filename), ext, len(content), rows, sum[:], now)
	if err != nil {
		return IngestionResult{}, err
	}
	if dedup {
		u.Logger.Info("duplicate upload, reusing existing", "upload_id", row.ID, "owner_id", ownerID, "filename", filename)
	}
	return IngestionResult{
		UploadID:     row.ID.String(),
		Filename:     row.Filename,
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum[:]),
		FileExt:      row.FileExt,
		RowCount:     row.RowCount,
		UploadedAt:   row.UploadedAt,
	}, nil
}

func (u *Usecase) IngestPath(ctx context.Context, ownerID, path string) (IngestionResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return IngestionResult{}, fmt.Errorf("abs path: %w", err)
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return IngestionResult{}, fmt.Errorf("read: %w", err)
	}
	return u.IngestContent(ctx, ownerID, filepath.Base(abs), content)
}
