package constants

import "strings"

// FileTypes holds the allowed file types for the format field in uploads.
var FileTypes = []string{"CSV", "XLSX"}

// AllowedExtensions holds the default allowed file extensions for company-list ingestion.
var AllowedExtensions = map[string]struct{}{
	"csv":  {},
	"xlsx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
