package archive

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
)

func TestCreate_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	content := "\"jdn\"\t\"julian_year\"\n1492870\t-625\n"

	for _, name := range []string{"out.tsv", "out.tsv.gz", "out.tsv.xz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "nested", name)
			w, err := Create(path, true)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if _, err := io.WriteString(w, content); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(got) != content {
				t.Errorf("round trip = %q, want %q", got, content)
			}
		})
	}
}

func TestCreate_NoParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.tsv")
	if _, err := Create(path, false); err == nil {
		t.Error("Create() should fail when the parent directory is missing")
	}
}

func TestNewWriter_CloseTwice(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Gzip)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	r, err := NewReader(&buf, Gzip)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	got, _ := io.ReadAll(r)
	if string(got) != "x" {
		t.Errorf("content = %q", got)
	}
}
