package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenArchive(t *testing.T) {
	path := writeArchive(t, map[string]string{
		SharedStringsPart: sstHeader + `</sst>`,
	})

	a, err := OpenArchive(path)
	if err != nil {
		t.Fatalf("OpenArchive failed: %v", err)
	}
	defer a.Close()

	data, err := a.ReadPart(SharedStringsPart)
	if err != nil {
		t.Fatalf("ReadPart failed: %v", err)
	}
	if string(data) != sstHeader+`</sst>` {
		t.Errorf("ReadPart returned %q", data)
	}

	_, err = a.ReadPart(DefaultSheetPart)
	if !errors.Is(err, ErrPartNotFound) {
		t.Errorf("ReadPart(missing) error = %v, expected ErrPartNotFound", err)
	}
}

func TestOpenArchiveErrors(t *testing.T) {
	dir := t.TempDir()
	notZip := filepath.Join(dir, "plain.xlsx")
	if err := os.WriteFile(notZip, []byte("not a zip file"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.xlsx")},
		{"not a zip", notZip},
	}

	for _, tt := range tests {
		a, err := OpenArchive(tt.path)
		if err == nil {
			a.Close()
			t.Errorf("%s: OpenArchive succeeded, expected error", tt.name)
			continue
		}
		if !errors.Is(err, ErrOpenArchive) {
			t.Errorf("%s: error = %v, expected ErrOpenArchive", tt.name, err)
		}
	}
}
