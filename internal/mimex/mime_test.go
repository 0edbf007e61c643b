package mimex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeByFilename_KnownExtensions(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"plot.png", "image/png"},
		{"photo.JPG", "image/jpeg"},
		{"report.pdf", "application/pdf"},
		{"notes.txt", "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeByFilename(tt.name)
			// TypeByExtension may append a charset parameter.
			require.True(t, got == tt.want || strings.HasPrefix(got, tt.want+";"),
				"got %q, want %q", got, tt.want)
		})
	}
}

func TestTypeByFilename_FallsBackToOctetStream(t *testing.T) {
	require.Equal(t, DefaultType, TypeByFilename("raw.xyz-unknown-ext"))
	require.Equal(t, DefaultType, TypeByFilename("no-extension"))
	require.Equal(t, DefaultType, TypeByFilename(""))
}
