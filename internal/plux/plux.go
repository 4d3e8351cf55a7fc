package plux

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Layer is one decoded PLUx data layer: a dense row-major float32 grid
// converted to metres, plus a NaN bitmap and its declared position
// (spec.md §4.J steps 4-5).
type Layer struct {
	ID               int
	XRes, YRes       int
	Data             []float64 // metres
	NaNMask          []bool
	PosX, PosY, PosZ float64 // micrometres, as declared
}

// Document is the fully decoded PLUx container: its image extents, its
// layers, and the flattened human-readable metadata (spec.md §4.J steps
// 6-7).
type Document struct {
	XRes, YRes   int
	XReal, YReal float64 // metres
	Layers       []Layer
	Metadata     map[string]string
	Warnings     []string
}

const microToMetre = 1e-6

// ErrMissingKey is the sentinel cause of a missing required key or file;
// it and SizeMismatchError are translated into the root package's typed
// errors (spec.md §4.J: "Fails with: parse-error... missing-required-key...
// size-mismatch... io").
var ErrMissingKey = errors.New("missing required key")

// SizeMismatchError reports a raw layer whose byte length does not
// match the xres*yres*4 bytes its declared resolution requires.
type SizeMismatchError struct {
	Want, Got int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch: want %d bytes, got %d", e.Want, e.Got)
}

// Decode builds a Document from an already-opened Archive (spec.md
// §4.J).
func Decode(a *Archive) (*Document, error) {
	idxFile, ok := a.Locate("index.xml")
	if !ok {
		return nil, errors.Wrap(ErrMissingKey, "index.xml")
	}
	raw, err := a.ReadAll(idxFile)
	if err != nil {
		return nil, err
	}
	idx, err := ParseIndex(raw)
	if err != nil {
		return nil, err
	}

	var recipe map[string]string
	if rf, ok := a.Locate("recipe.txt"); ok {
		rawRecipe, err := a.ReadAll(rf)
		if err != nil {
			return nil, err
		}
		recipe, err = ParseRecipe(rawRecipe)
		if err != nil {
			return nil, err
		}
	}

	xres, err := requiredInt(idx, "/xml/GENERAL/IMAGE_SIZE_X")
	if err != nil {
		return nil, err
	}
	yres, err := requiredInt(idx, "/xml/GENERAL/IMAGE_SIZE_Y")
	if err != nil {
		return nil, err
	}
	fovX, err := requiredFloat(idx, "/xml/GENERAL/FOV_X")
	if err != nil {
		return nil, err
	}
	fovY, err := requiredFloat(idx, "/xml/GENERAL/FOV_Y")
	if err != nil {
		return nil, err
	}

	doc := &Document{XRes: xres, YRes: yres, Metadata: map[string]string{}}

	doc.XReal, doc.Warnings = positiveOrDefault(float64(xres)*fovX*microToMetre, "xreal", doc.Warnings)
	doc.YReal, doc.Warnings = positiveOrDefault(float64(yres)*fovY*microToMetre, "yreal", doc.Warnings)

	for _, id := range idx.LayerIDs() {
		nameKey := fmt.Sprintf("/xml/LAYER_%d/FILENAME_Z", id)
		filename, ok := idx[nameKey]
		if !ok {
			continue // spec.md §4.J step 4: skip layers whose filename is absent
		}
		lf, ok := a.Locate(filename)
		if !ok {
			return nil, errors.Wrapf(ErrMissingKey, "layer %d data file %q", id, filename)
		}
		raw, err := a.ReadAll(lf)
		if err != nil {
			return nil, err
		}
		want := 4 * xres * yres
		if len(raw) != want {
			return nil, &SizeMismatchError{Want: want, Got: len(raw)}
		}
		data := make([]float64, xres*yres)
		mask := make([]bool, xres*yres)
		for i := range data {
			bits := binary.LittleEndian.Uint32(raw[i*4:])
			f := math.Float32frombits(bits)
			if math.IsNaN(float64(f)) {
				mask[i] = true
				continue
			}
			data[i] = float64(f) * microToMetre
		}
		doc.Layers = append(doc.Layers, Layer{
			ID: id, XRes: xres, YRes: yres, Data: data, NaNMask: mask,
			PosX: optionalFloat(idx, fmt.Sprintf("/xml/LAYER_%d/POSITION_X", id)),
			PosY: optionalFloat(idx, fmt.Sprintf("/xml/LAYER_%d/POSITION_Y", id)),
			PosZ: optionalFloat(idx, fmt.Sprintf("/xml/LAYER_%d/POSITION_Z", id)),
		})
	}

	if v, ok := idx["/xml/GENERAL/AUTHOR"]; ok {
		doc.Metadata["author"] = v
	}
	if v, ok := idx["/xml/GENERAL/DATE"]; ok {
		doc.Metadata["date"] = v
	}
	for n := 0; ; n++ {
		nameKey := fmt.Sprintf("/xml/INFO/ITEM_%d/NAME", n)
		valKey := fmt.Sprintf("/xml/INFO/ITEM_%d/VALUE", n)
		name, okName := idx[nameKey]
		val, okVal := idx[valKey]
		if !okName && !okVal {
			break
		}
		if okName && okVal {
			doc.Metadata["info."+name] = val
		}
	}
	for k, v := range recipe {
		doc.Metadata["recipe."+strings.ToLower(strings.ReplaceAll(k, " ", "_"))] = v
	}

	return doc, nil
}

func requiredInt(idx Index, key string) (int, error) {
	s, ok := idx[key]
	if !ok {
		return 0, errors.Wrap(ErrMissingKey, key)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", key)
	}
	return n, nil
}

func requiredFloat(idx Index, key string) (float64, error) {
	s, ok := idx[key]
	if !ok {
		return 0, errors.Wrap(ErrMissingKey, key)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", key)
	}
	return f, nil
}

func optionalFloat(idx Index, key string) float64 {
	s, ok := idx[key]
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// positiveOrDefault forces a non-positive extent to 1.0, recording a
// warning (spec.md §4.J step 6: "force both positive, defaulting to 1.0
// with a warning on zero").
func positiveOrDefault(v float64, name string, warnings []string) (float64, []string) {
	if v > 0 {
		return v, warnings
	}
	return 1.0, append(warnings, fmt.Sprintf("plux: %s was non-positive, defaulting to 1.0", name))
}
