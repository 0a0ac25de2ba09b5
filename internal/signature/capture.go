// Package signature is the capture boundary for the two audit signatures.
// A captured signature is an opaque data-URL handle; the rest of the system
// only ever checks whether a handle is empty or not.
package signature

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageBytes caps the size of an imported signature image.
const MaxImageBytes = 2 << 20 // 2 MiB

var (
	// ErrUnsupportedFormat is returned for files that are not PNG, JPEG, or
	// GIF images.
	ErrUnsupportedFormat = errors.New("signature: unsupported image format")
	// ErrTooLarge is returned when the image exceeds MaxImageBytes.
	ErrTooLarge = errors.New("signature: image too large")
	// ErrEmptyImage is returned for zero-byte files.
	ErrEmptyImage = errors.New("signature: image file is empty")
)

var mimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// Capture imports a signature image file and returns its opaque handle, a
// base64 data URL of the same shape a drawing canvas would produce.
func Capture(path string) (string, error) {
	mime, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("signature: reading %s: %w", path, err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyImage, path)
	}
	if info.Size() > MaxImageBytes {
		return "", fmt.Errorf("%w: %s is %d bytes (max %d)", ErrTooLarge, path, info.Size(), MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("signature: reading %s: %w", path, err)
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

// Clear returns the empty handle produced by an explicit clear action.
func Clear() string {
	return ""
}

// Present reports whether a handle holds a captured signature.
func Present(handle string) bool {
	return handle != ""
}
