package plux

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Index is a path -> text mapping built from index.xml (spec.md §4.J
// step 2), e.g. key "/xml/GENERAL/FOV_X".
type Index map[string]string

// ParseIndex strips a UTF-8 BOM, normalises CRLF to LF, and streams raw
// through a streaming XML decoder, recording each leaf element's trimmed
// character data at its slash-joined path (spec.md §4.J step 2).
func ParseIndex(raw []byte) (Index, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	dec := xml.NewDecoder(bytes.NewReader(raw))
	idx := make(Index)
	var stack []string
	var leaf strings.Builder
	sawChild := false

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "plux: parsing index.xml")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			leaf.Reset()
			sawChild = false
		case xml.CharData:
			leaf.Write(t)
		case xml.EndElement:
			if !sawChild {
				if text := strings.TrimSpace(leaf.String()); text != "" {
					idx["/"+strings.Join(stack, "/")] = text
				}
			}
			stack = stack[:len(stack)-1]
			leaf.Reset()
			sawChild = true
		}
	}
	return idx, nil
}

// LayerIDs returns the sorted set of integer layer ids declared as
// `/xml/LAYER_<i>` (spec.md §4.J step 2).
func (idx Index) LayerIDs() []int {
	seen := map[int]bool{}
	for key := range idx {
		parts := strings.Split(key, "/")
		for _, p := range parts {
			if !strings.HasPrefix(p, "LAYER_") {
				continue
			}
			n, err := parseInt(p[len("LAYER_"):])
			if err == nil {
				seen[n] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sortInts(out)
	return out
}

func parseInt(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, errors.New("empty")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.Errorf("not a digit: %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func sortInts(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

// ParseRecipe parses recipe.txt into a flat key/value mapping, separate
// from the XML index and contributing metadata only (spec.md §4.J step
// 3). Each non-blank line is "key: value" or "key=value"; surrounding
// whitespace is trimmed from both sides.
func ParseRecipe(raw []byte) (map[string]string, error) {
	out := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sep := strings.IndexAny(line, ":=")
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(line[:sep])
		val := strings.TrimSpace(line[sep+1:])
		out[key] = val
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "plux: reading recipe.txt")
	}
	return out, nil
}
