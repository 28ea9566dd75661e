package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	m "tighten.dev/pkg/tighten/internal/model"
)

const testManifest = "[package]\nname = \"fixture\"\nversion = \"0.1.0\"\nedition = \"2021\"\n"

// writeCrate lays out a Cargo project in a temp dir. files maps paths
// relative to the root onto their contents.
func writeCrate(t *testing.T, files map[string]string) m.Path {
	t.Helper()

	root := t.TempDir()

	if _, ok := files["Cargo.toml"]; !ok {
		files["Cargo.toml"] = testManifest
	}

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	return m.Path(root)
}
