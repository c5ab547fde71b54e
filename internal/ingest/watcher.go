package ingest

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tomide-adesanmi/company-enricher/constants"
)

// WatchConfig configures the drop-directory watcher.
type WatchConfig struct {
	Root        string // directory to watch
	OwnerID     string // owner assigned to every ingested file
	AllowedExts map[string]struct{}
	Debounce    time.Duration // coalesce rapid write bursts while a file lands
}

// StartWatcher ingests company-list files dropped into cfg.Root. Files are
// ingested only once their write events settle for the debounce window, so a
// half-copied spreadsheet is never parsed.
func StartWatcher(ctx context.Context, cfg WatchConfig, ing Ingestor, logger *slog.Logger) error {
	if cfg.Root == "" {
		return errors.New("no watch root provided")
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = constants.AllowedExtensions
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 2 * time.Second
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(cfg.Root); err != nil {
		_ = w.Close()
		return err
	}
	logger.Info("watching drop directory", "root", cfg.Root, "owner_id", cfg.OwnerID)

	go func() {
		defer func() { _ = w.Close() }()
		var mu sync.Mutex
		pending := map[string]*time.Timer{}

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				if isHidden(ev.Name) || !allowedExt(ev.Name, cfg.AllowedExts) {
					continue
				}
				path := ev.Name
				mu.Lock()
				if t, exists := pending[path]; exists {
					t.Reset(cfg.Debounce)
					mu.Unlock()
					continue
				}
				pending[path] = time.AfterFunc(cfg.Debounce, func() {
					mu.Lock()
					delete(pending, path)
					mu.Unlock()
					res, err := ing.IngestPath(ctx, cfg.OwnerID, path)
					if err != nil {
						logger.Error("watch ingest failed", "path", path, "error", err)
						return
					}
					logger.Info("watch ingest ok", "path", path, "upload_id", res.UploadID, "dedup", res.Deduplicated)
				})
				mu.Unlock()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", err)
			}
		}
	}()
	return nil
}

func allowedExt(path string, allow map[string]struct{}) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := allow[ext]
	return ok
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
