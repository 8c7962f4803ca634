package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "morph" {
		t.Errorf("Expected Name to be %q, got %q", "morph", Name)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthor(t *testing.T) {
	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestDirs(t *testing.T) {
	if Prefix() == "" {
		t.Fatal("Prefix is empty")
	}

	for name, dir := range map[string]string{
		"ConfigDir": ConfigDir(),
		"CacheDir":  CacheDir(),
	} {
		if filepath.Base(dir) != Prefix() {
			t.Errorf("%s %q does not end with %q", name, dir, Prefix())
		}
	}

	if p := EnvPrefix(); !strings.HasSuffix(p, "_") || strings.ToUpper(p) != p {
		t.Errorf("unexpected EnvPrefix %q", p)
	}
}
