package gwy

import (
	"encoding/xml"
	"io"
	"strconv"

	goerrors "errors"

	"github.com/christian-sahlmann/gwyddion-sub013/internal/plux"
)

// PLUxLayer is one decoded layer field, its declared stage position, and
// its layer id (spec.md §4.J).
type PLUxLayer struct {
	ID               int
	Field            *Field
	PosX, PosY, PosZ float64 // micrometres
}

// PLUxDocument is a fully decoded PLUx container (spec.md §4.J).
type PLUxDocument struct {
	Layers   []PLUxLayer
	Metadata map[string]string
	Warnings []string
}

// OpenPLUx reads a PLUx zip container from ra (sized size bytes) and
// decodes its index, optional recipe, and every declared layer into
// Fields (spec.md §4.J). Failures are reported as the root package's
// typed errors: *ParseError for malformed XML, *MissingKeyError for an
// absent required key, *SizeMismatchError for a misfitting raw layer,
// and *IOError for zip/archive failures.
func OpenPLUx(ra io.ReaderAt, size int64) (*PLUxDocument, error) {
	arc, err := plux.OpenArchive(ra, size)
	if err != nil {
		return nil, &IOError{Op: "opening PLUx archive", Err: err}
	}
	doc, err := plux.Decode(arc)
	if err != nil {
		var sizeErr *plux.SizeMismatchError
		var synErr *xml.SyntaxError
		var numErr *strconv.NumError
		switch {
		case goerrors.Is(err, plux.ErrMissingKey):
			return nil, &MissingKeyError{Key: err.Error()}
		case goerrors.As(err, &sizeErr):
			return nil, &SizeMismatchError{Want: sizeErr.Want, Got: sizeErr.Got}
		case goerrors.As(err, &synErr), goerrors.As(err, &numErr):
			return nil, &ParseError{Op: "index.xml", Err: err}
		default:
			return nil, &IOError{Op: "reading PLUx archive", Err: err}
		}
	}

	out := &PLUxDocument{Metadata: doc.Metadata, Warnings: doc.Warnings}
	for _, l := range doc.Layers {
		f := NewField(l.XRes, l.YRes, doc.XReal, doc.YReal)
		copy(f.Data(), l.Data)
		for i, nan := range l.NaNMask {
			if nan {
				f.EnsureMask()[i] = true
			}
		}
		out.Layers = append(out.Layers, PLUxLayer{
			ID: l.ID, Field: f, PosX: l.PosX, PosY: l.PosY, PosZ: l.PosZ,
		})
	}
	return out, nil
}
