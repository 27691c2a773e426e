// Package loader is the document-acquisition boundary: it reads the full
// document text into memory before index construction begins. The core index
// assumes the text is already decoded; no decoding happens here beyond the
// byte-to-string conversion.
package loader

import (
	"log/slog"
	"net/http"
	"os"

	apperrors "github.com/daisyflemming/textsearch/pkg/errors"
)

// Load reads the entire file at path and returns its contents. Any read
// failure surfaces as ErrDocumentLoad; callers must treat that as fatal for
// construction.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Newf(apperrors.ErrDocumentLoad,
			http.StatusServiceUnavailable, "reading %s: %v", path, err)
	}
	slog.Default().With("component", "loader").Debug("document loaded",
		"path", path,
		"bytes", len(data),
	)
	return string(data), nil
}
