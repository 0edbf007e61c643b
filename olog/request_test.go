package olog

import (
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseParts(t *testing.T, p *payload) []*multipart.Part {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(p.contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	mr := multipart.NewReader(p.body, params["boundary"])
	var parts []*multipart.Part
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return parts
		}
		require.NoError(t, err)
		// drain so the reader can advance
		_, err = io.Copy(io.Discard, part)
		require.NoError(t, err)
		part.Close()
		parts = append(parts, part)
	}
}

func TestJsonBody_ContentType(t *testing.T) {
	p, err := jsonBody(Tag{Name: "x"})
	require.NoError(t, err)
	require.Equal(t, "application/json", p.contentType)

	b, err := io.ReadAll(p.body)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"x"}`, string(b))
}

func TestLogMultipart_NeverCarriesJSONContentType(t *testing.T) {
	p, err := logMultipart(&LogEntry{Title: "t"}, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(p.contentType, "multipart/form-data; boundary="))
}

func TestLogMultipart_EntryPartFirst(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0o660))

	p, err := logMultipart(&LogEntry{Title: "t"}, []string{file})
	require.NoError(t, err)

	parts := parseParts(t, p)
	require.Len(t, parts, 2)
	require.Equal(t, "logEntry", parts[0].FormName())
	require.Equal(t, "application/json", parts[0].Header.Get("Content-Type"))
	require.Equal(t, "files", parts[1].FormName())
	require.Equal(t, "a.txt", parts[1].FileName())
}

func TestAttachMultipart_MissingFile(t *testing.T) {
	_, err := attachMultipart(filepath.Join(t.TempDir(), "absent.bin"), "")
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestAttachMultiMultipart_AllMissingYieldsEmptyBody(t *testing.T) {
	p, err := attachMultiMultipart([]string{
		filepath.Join(t.TempDir(), "x"),
		filepath.Join(t.TempDir(), "y"),
	})
	require.NoError(t, err)
	require.Empty(t, parseParts(t, p))
}
