package signature

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCapturePNG(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	path := writeImage(t, "inspector.png", raw)

	handle, err := Capture(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(handle, "data:image/png;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(handle, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
	assert.True(t, Present(handle))
}

func TestCaptureJPEGExtensions(t *testing.T) {
	for _, name := range []string{"owner.jpg", "owner.jpeg", "OWNER.JPG"} {
		handle, err := Capture(writeImage(t, name, []byte{0xff, 0xd8}))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(handle, "data:image/jpeg;base64,"), name)
	}
}

func TestCaptureUnsupportedFormat(t *testing.T) {
	_, err := Capture(writeImage(t, "signature.pdf", []byte("%PDF")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCaptureMissingFile(t *testing.T) {
	_, err := Capture(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestCaptureEmptyFile(t *testing.T) {
	_, err := Capture(writeImage(t, "blank.png", nil))
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestCaptureTooLarge(t *testing.T) {
	_, err := Capture(writeImage(t, "huge.png", make([]byte, MaxImageBytes+1)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestClear(t *testing.T) {
	assert.Empty(t, Clear())
	assert.False(t, Present(Clear()))
}
