package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var allowedMimeTypes = map[string]bool{
	"audio/mpeg": true,
	"audio/mp3":  true,
	"audio/wav":  true,
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// IsAllowedMime reports whether an upload MIME type is on the allow-list.
func IsAllowedMime(mimeType string) bool {
	return allowedMimeTypes[mimeType]
}

// UploadSubdir returns the storage subdirectory for a MIME type:
// audio/* under audio/, everything else under images/.
func UploadSubdir(mimeType string) string {
	if strings.HasPrefix(mimeType, "audio/") {
		return "audio"
	}
	return "images"
}

// StoredName generates a collision-free on-disk name for an upload,
// keeping a slug of the original base name for readability.
func StoredName(original string) string {
	ext := filepath.Ext(original)
	base := slug.Make(strings.TrimSuffix(filepath.Base(original), ext))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)
}

// EnsureUploadDirs creates the audio and images subdirectories.
func EnsureUploadDirs(root string) error {
	for _, subdir := range []string{"audio", "images"} {
		if err := os.MkdirAll(filepath.Join(root, subdir), 0o755); err != nil {
			return err
		}
	}
	return nil
}
