// Package parser reads the raw OOXML parts needed to extract a header row.
package parser

import (
	"archive/zip"
	"fmt"
	"io"
)

// Archive is an opened xlsx container.
type Archive struct {
	rc *zip.ReadCloser
}

// OpenArchive opens the xlsx file at path. The caller must Close it.
func OpenArchive(path string) (*Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrOpenArchive, path, err)
	}
	return &Archive{rc: rc}, nil
}

// ReadPart returns the content of the named part.
func (a *Archive) ReadPart(name string) ([]byte, error) {
	return readZipFile(&a.rc.Reader, name)
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	return a.rc.Close()
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open part %s: %w", name, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				return nil, fmt.Errorf("read part %s: %w", name, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
}
