// Package letters loads the ordered letter set that seeds the incompatibility graph.
//
// The source is a JSON object whose keys are letter names, e.g.
//
//	{"upper_A": "A", "lower_alpha": "\\alpha", ...}
//
// Key order is significant: it is the order in which safe letters are
// reported. Values are kept when they are JSON strings (typically the TeX
// source of the glyph) and are otherwise ignored.
package letters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for letter set loading.
var (
	// ErrNotObject is returned when the document is not a JSON object.
	ErrNotObject = errors.New("letters: document is not a JSON object")

	// ErrEmptyName is returned for an empty key.
	ErrEmptyName = errors.New("letters: empty letter name")

	// ErrTrailingData is returned when bytes follow the closing brace.
	ErrTrailingData = errors.New("letters: trailing data after object")
)

// Letter is one entry of the set.
type Letter struct {
	// Name is the JSON key, used as vertex ID and pair-file component.
	Name string

	// Value is the JSON string value, or "" for non-string values.
	Value string
}

// Set is an ordered collection of unique letters. It is immutable once built.
type Set struct {
	letters []Letter
	index   map[string]int
}

// New builds a Set from names in order. Duplicates keep their first position.
func New(names ...string) *Set {
	s := &Set{index: make(map[string]int, len(names))}
	for _, n := range names {
		s.put(n, "")
	}

	return s
}

// put inserts or updates name; the first position wins, the last value wins.
func (s *Set) put(name, value string) {
	if i, ok := s.index[name]; ok {
		s.letters[i].Value = value
		return
	}
	s.index[name] = len(s.letters)
	s.letters = append(s.letters, Letter{Name: name, Value: value})
}

// Load reads and decodes the letter file at path.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("letters: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Decode streams a JSON object from r, keeping key order.
func Decode(r io.Reader) (*Set, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("letters: decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	s := &Set{index: make(map[string]int)}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("letters: decode key: %w", err)
		}
		name, _ := tok.(string) // object keys are always strings
		if name == "" {
			return nil, ErrEmptyName
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("letters: decode value of %q: %w", name, err)
		}
		s.put(name, stringValue(raw))
	}

	if _, err = dec.Token(); err != nil { // closing '}'
		return nil, fmt.Errorf("letters: decode: %w", err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return s, nil
}

func stringValue(raw json.RawMessage) string {
	if len(raw) == 0 || raw[0] != '"' {
		return ""
	}
	var v string
	if err := json.Unmarshal(bytes.TrimSpace(raw), &v); err != nil {
		return ""
	}

	return v
}

// Len returns the number of letters.
func (s *Set) Len() int { return len(s.letters) }

// Names returns letter names in set order.
func (s *Set) Names() []string {
	out := make([]string, len(s.letters))
	for i, l := range s.letters {
		out[i] = l.Name
	}

	return out
}

// Letters returns a copy of the entries in set order.
func (s *Set) Letters() []Letter {
	out := make([]Letter, len(s.letters))
	copy(out, s.letters)

	return out
}

// Has reports whether name is in the set.
func (s *Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Value returns the string value stored for name.
func (s *Set) Value(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}

	return s.letters[i].Value, true
}

// Without returns a new Set lacking the given names. Unknown names are ignored.
func (s *Set) Without(names ...string) *Set {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	out := &Set{index: make(map[string]int, len(s.letters))}
	for _, l := range s.letters {
		if _, skip := drop[l.Name]; skip {
			continue
		}
		out.put(l.Name, l.Value)
	}

	return out
}
