// Package plux implements the PLUx container reader (spec.md §4.J): a
// ZIP archive holding an `index.xml` metadata index, an optional
// `recipe.txt`, and one raw little-endian float32 layer file per
// declared layer.
package plux

import (
	"archive/zip"
	"io"

	"github.com/pkg/errors"
)

// Archive is a thin wrapper over archive/zip.Reader exposing the
// by-name lookup semantics the original unzLocateFile/unzOpenCurrentFile
// pair provided (spec.md §4.J step 1).
type Archive struct {
	zr *zip.Reader
}

// OpenArchive opens a PLUx zip container from ra, sized size bytes.
func OpenArchive(ra io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, errors.Wrap(err, "plux: opening zip")
	}
	return &Archive{zr: zr}, nil
}

// Locate finds a member by exact name, also trying a "./" prefixed
// variant (spec.md §4.J step 3: "also accept ./recipe.txt").
func (a *Archive) Locate(name string) (*zip.File, bool) {
	for _, f := range a.zr.File {
		if f.Name == name || f.Name == "./"+name {
			return f, true
		}
	}
	return nil, false
}

// ReadAll opens and fully reads a member's uncompressed contents.
func (a *Archive) ReadAll(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "plux: opening member %q", f.Name)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "plux: reading member %q", f.Name)
	}
	return data, nil
}
