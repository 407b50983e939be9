// Package media handles naming and validation of uploaded image files.
package media

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedImageType is returned for uploads that are not images.
var ErrUnsupportedImageType = errors.New("unsupported image type")

// imageExtensions is the upload allowlist.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// ImageFilename returns a random collision-free filename for an uploaded
// image, keeping the original extension.
func ImageFilename(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !imageExtensions[ext] {
		return "", ErrUnsupportedImageType
	}

	return uuid.New().String() + ext, nil
}

// URLPath returns the public URL path for an uploaded file.
func URLPath(filename string) string {
	return "/uploads/" + filename
}
