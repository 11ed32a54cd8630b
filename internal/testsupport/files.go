package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lectern/internal/ingest"
)

// WriteDocument marshals a recording document to the target path.
func WriteDocument(t testing.TB, path string, doc ingest.Document) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
