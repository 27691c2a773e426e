package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/daisyflemming/textsearch/pkg/errors"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	content := "The quick brown fox.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != content {
		t.Errorf("Load = %q, want %q", got, content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatal("Load of missing file succeeded")
	}
	if !errors.Is(err, apperrors.ErrDocumentLoad) {
		t.Errorf("error %v is not ErrDocumentLoad", err)
	}
}
