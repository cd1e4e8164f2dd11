package writer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	if err := WriteFile(path, "<html>first</html>"); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "<html>first</html>" {
		t.Errorf("file contents = %q", got)
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	if err := WriteFile(path, "old"); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, "new"); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "new" {
		t.Errorf("file contents = %q, want overwritten value", got)
	}
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	if err := WriteFile(filepath.Join(dir, "index.html"), "page"); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "index.html"), "page"); err == nil {
		t.Error("WriteFile() expected error for missing directory")
	}
}
