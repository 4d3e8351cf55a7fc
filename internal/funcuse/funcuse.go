// Package funcuse implements the recently-used-function ranker
// (spec.md §4.G): a dual-time-scale exponentially decayed usage counter,
// kept roughly sorted so hot entries are found by a short linear scan,
// with a flat "<name> <global>" persistence format.
package funcuse

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Local and global decay rates (spec.md §4.G): half-life of 8 uses and
// 240 uses respectively.
const (
	localDecay  = math.Ln2 / 8
	globalDecay = math.Ln2 / 240
)

// Entry is one tracked function name with its two decayed counters.
type Entry struct {
	Name          string
	Local, Global float64
}

func (e Entry) key() float64 { return e.Local + e.Global }

// List is the ranked, roughly-sorted collection of Entry, in descending
// key order.
type List struct {
	entries []Entry
}

// New returns an empty ranked list.
func New() *List { return &List{} }

// Use records one use of name (spec.md §4.G steps 1-3): locate it (or
// append a fresh entry), decay every entry, boost the hit, then bubble
// it toward the head by descending local+global.
func (l *List) Use(name string) {
	idx := -1
	for i, e := range l.entries {
		if e.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.entries = append(l.entries, Entry{
			Name:   name,
			Local:  localDecay / (1 + localDecay),
			Global: globalDecay / (1 + globalDecay),
		})
		idx = len(l.entries) - 1
	}

	for i := range l.entries {
		e := &l.entries[i]
		if i == idx {
			e.Local += localDecay
			e.Global += globalDecay
		}
		e.Local /= 1 + localDecay
		e.Global /= 1 + globalDecay
	}

	l.bubble(idx)
}

// bubble moves the entry at idx toward the head while its key exceeds
// its predecessor's, preserving the roughly-sorted invariant cheaply.
func (l *List) bubble(idx int) {
	for idx > 0 && l.entries[idx].key() > l.entries[idx-1].key() {
		l.entries[idx], l.entries[idx-1] = l.entries[idx-1], l.entries[idx]
		idx--
	}
}

// Entries returns the ranked entries, most-used first. The returned
// slice must not be mutated by the caller.
func (l *List) Entries() []Entry { return l.entries }

// Len reports the number of tracked names.
func (l *List) Len() int { return len(l.entries) }

// Load replaces the list's contents from r: one "<name> <global>" pair
// per line, local implicitly zero (spec.md §4.G persistence). Lines with
// global == 0 are skipped. After loading, entries are sorted descending
// by local+global (i.e. by global alone, since local is zero).
func Load(r io.Reader) (*List, error) {
	l := New()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		sp := strings.LastIndexByte(line, ' ')
		if sp < 0 {
			return nil, errors.Errorf("funcuse: malformed line %q", line)
		}
		name := line[:sp]
		g, err := strconv.ParseFloat(line[sp+1:], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "funcuse: parsing global for %q", name)
		}
		if g == 0 {
			continue
		}
		l.entries = append(l.entries, Entry{Name: name, Global: g})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "funcuse: reading store")
	}
	sortDesc(l.entries)
	return l, nil
}

func sortDesc(e []Entry) {
	for i := 1; i < len(e); i++ {
		for j := i; j > 0 && e[j].key() > e[j-1].key(); j-- {
			e[j], e[j-1] = e[j-1], e[j]
		}
	}
}

// Save writes the list as "<name> <global>" lines, one per entry, in
// current order (spec.md §4.G persistence).
func (l *List) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range l.entries {
		if _, err := fmt.Fprintf(bw, "%s %v\n", e.Name, e.Global); err != nil {
			return errors.Wrap(err, "funcuse: writing store")
		}
	}
	return errors.Wrap(bw.Flush(), "funcuse: flushing store")
}
