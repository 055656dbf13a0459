package letters_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/glyphcover/letters"
)

func TestDecode_KeepsKeyOrder(t *testing.T) {
	src := `{
		"upper_Z": "Z",
		"lower_a": "a",
		"upper_Omega": "\\Omega",
		"digit_1": 1
	}`
	s, err := letters.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []string{"upper_Z", "lower_a", "upper_Omega", "digit_1"}
	if diff := cmp.Diff(want, s.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if v, ok := s.Value("upper_Omega"); !ok || v != `\Omega` {
		t.Errorf("Value(upper_Omega) = %q, %v", v, ok)
	}
	if v, ok := s.Value("digit_1"); !ok || v != "" {
		t.Errorf("non-string value should be empty, got %q, %v", v, ok)
	}
	if _, ok := s.Value("missing"); ok {
		t.Error("Value(missing) reported present")
	}
}

// TestDecode_DuplicateKeys: first position wins, last value wins.
func TestDecode_DuplicateKeys(t *testing.T) {
	s, err := letters.Decode(strings.NewReader(`{"a":"1","b":"2","a":"3"}`))
	if err != nil {
		t.Fatal(err)
	}
	wantLetters := []letters.Letter{{Name: "a", Value: "3"}, {Name: "b", Value: "2"}}
	if diff := cmp.Diff(wantLetters, s.Letters()); diff != "" {
		t.Errorf("Letters() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d; want 2", s.Len())
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"array", `["a","b"]`, letters.ErrNotObject},
		{"string", `"a"`, letters.ErrNotObject},
		{"empty key", `{"": "x"}`, letters.ErrEmptyName},
		{"trailing object", `{"a":"x"}{}`, letters.ErrTrailingData},
		{"trailing garbage", `{"a":"x"} nope`, letters.ErrTrailingData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := letters.Decode(strings.NewReader(tc.src)); !errors.Is(err, tc.want) {
				t.Errorf("want %v, got %v", tc.want, err)
			}
		})
	}

	for _, src := range []string{"", `{"a":`, `{"a" "b"}`} {
		if _, err := letters.Decode(strings.NewReader(src)); err == nil {
			t.Errorf("Decode(%q): expected error", src)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letters.json")
	if err := os.WriteFile(path, []byte(`{"lower_i":"i","upper_A":"A","lower_j":"j"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := letters.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Has("upper_A") || s.Has("upper_B") {
		t.Errorf("Has() mismatch: %v", s.Names())
	}

	trimmed := s.Without("lower_i", "lower_j", "upper_Xi")
	if diff := cmp.Diff([]string{"upper_A"}, trimmed.Names()); diff != "" {
		t.Errorf("Without() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Errorf("Without must not mutate the source, Len() = %d", s.Len())
	}

	_, err = letters.Load(filepath.Join(dir, "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: want ErrNotExist, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "absent.json") {
		t.Errorf("error should name the path, got %v", err)
	}
}

func TestNew(t *testing.T) {
	s := letters.New("b", "a", "b")
	if diff := cmp.Diff([]string{"b", "a"}, s.Names()); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
}
