package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFilename(t *testing.T) {
	testCases := []struct {
		name     string
		original string
		wantExt  string
		wantErr  bool
	}{
		{name: "png", original: "hero.png", wantExt: ".png"},
		{name: "uppercase extension", original: "PHOTO.JPG", wantExt: ".jpg"},
		{name: "webp", original: "banner.webp", wantExt: ".webp"},
		{name: "executable rejected", original: "payload.exe", wantErr: true},
		{name: "no extension rejected", original: "noext", wantErr: true},
		{name: "svg rejected", original: "logo.svg", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ImageFilename(tc.original)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedImageType)
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(got, tc.wantExt))
			assert.NotEqual(t, tc.original, got)
		})
	}
}

func TestImageFilenameUnique(t *testing.T) {
	a, err := ImageFilename("a.png")
	require.NoError(t, err)
	b, err := ImageFilename("a.png")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestURLPath(t *testing.T) {
	assert.Equal(t, "/uploads/x.png", URLPath("x.png"))
}
