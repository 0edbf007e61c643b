package olog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/ologgo/internal/mimex"
)

// The service's multipart routes expect these exact part names.
const (
	partLogEntry        = "logEntry"
	partFiles           = "files"
	partFile            = "file"
	partFilename        = "filename"
	partFileDescription = "fileMetadataDescription"
)

func jsonBody(v any) (*payload, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return &payload{body: bytes.NewReader(b), contentType: "application/json"}, nil
}

// addFilePart copies the file at path into a new part named field. The file
// handle is closed before returning, on success and on error alike.
func addFilePart(w *multipart.Writer, field, path, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// logMultipart encodes a log entry together with its attachment files for
// the creation-with-files route: one logEntry part carrying the JSON record,
// then one files part per file. Files missing on disk are skipped so a
// single bad path does not abort the rest of the batch.
func logMultipart(entry *LogEntry, paths []string) (*payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	meta, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encoding log entry: %w", err)
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, partLogEntry))
	h.Set("Content-Type", "application/json")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(meta); err != nil {
		return nil, err
	}

	for _, p := range paths {
		if err := addFilePart(w, partFiles, p, mimex.TypeByFilename(p)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return &payload{body: &buf, contentType: w.FormDataContentType()}, nil
}

// attachMultipart encodes a single-file attach request: a file part plus
// filename and fileMetadataDescription text parts, the shape the
// single-attachment route expects. A missing file fails with ErrFileNotFound
// before any bytes are written.
func attachMultipart(path, description string) (*payload, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := addFilePart(w, partFile, path, mimex.DefaultType); err != nil {
		return nil, err
	}
	if err := w.WriteField(partFilename, filepath.Base(path)); err != nil {
		return nil, err
	}
	if err := w.WriteField(partFileDescription, description); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return &payload{body: &buf, contentType: w.FormDataContentType()}, nil
}

// attachMultiMultipart encodes a bulk attach request: one repeated file part
// per file, MIME type inferred from the extension. Missing files are
// skipped, matching the batch policy of logMultipart.
func attachMultiMultipart(paths []string) (*payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range paths {
		if err := addFilePart(w, partFile, p, mimex.TypeByFilename(p)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return &payload{body: &buf, contentType: w.FormDataContentType()}, nil
}
