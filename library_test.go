package seqproj

import (
	"errors"
	"strings"
	"testing"
)

func TestNewLibrary(t *testing.T) {
	lib, err := NewLibrary([]string{"RNA", "RNA", "cDNA"}, []string{"polyA"}, "F", map[string]string{"RIN": "7"})
	if err != nil {
		t.Fatal(err)
	}

	if got := lib.Source(); len(got) != 2 || got[0] != "RNA" || got[1] != "cDNA" {
		t.Fatalf("Source was not deduplicated and sorted: %v", got)
	}

	if lib.Stranding() != Forward {
		t.Fatalf("Got stranding %v", lib.Stranding())
	}

	if lib.Attributes()["RIN"] != "7" {
		t.Fatalf("Got attributes %v", lib.Attributes())
	}
}

func TestNewLibraryInvalid(t *testing.T) {
	for _, v := range []struct {
		Source    []string
		Selection []string
		Stranding interface{}
		Err       error
	}{
		{nil, []string{"polyA"}, "u", ErrEmpty},
		{[]string{}, []string{"polyA"}, "u", ErrEmpty},
		{[]string{"RNA"}, nil, "u", ErrEmpty},
		{[]string{"RNA"}, []string{"polyA"}, "strand9", ErrInvalidEnum},
	} {
		if _, err := NewLibrary(v.Source, v.Selection, v.Stranding, nil); !errors.Is(err, v.Err) {
			t.Errorf("%+v: expected %v, got %v", v, v.Err, err)
		}
	}
}

func TestLibraryIsolated(t *testing.T) {
	source := []string{"RNA"}
	attributes := map[string]string{"RIN": "7"}
	lib, err := NewLibrary(source, []string{"polyA"}, Unstranded, attributes)
	if err != nil {
		t.Fatal(err)
	}

	source[0] = "DNA"
	attributes["RIN"] = "3"
	lib.Attributes()["RIN"] = "1"
	lib.Source()[0] = "protein"

	if lib.Source()[0] != "RNA" || lib.Attributes()["RIN"] != "7" {
		t.Fatalf("Library was mutated from outside: %v", lib)
	}
}

func TestLibraryEqualityAndHash(t *testing.T) {
	a, err := NewLibrary([]string{"cDNA", "RNA"}, []string{"polyA", "rRNA depletion"}, "r", map[string]string{"Ab": "Z22", "RIN": "7"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewLibrary([]string{"RNA", "cDNA"}, []string{"rRNA depletion", "polyA"}, Reverse, map[string]string{"RIN": "7", "Ab": "Z22"})
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) || a.Compare(b) != 0 {
		t.Fatalf("Expected %v == %v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("Equal libraries have different hashes")
	}

	c, err := NewLibrary([]string{"RNA", "cDNA"}, []string{"rRNA depletion", "polyA"}, Reverse, map[string]string{"RIN": "8", "Ab": "Z22"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) || a.Hash() == c.Hash() {
		t.Fatalf("Expected %v != %v", a, c)
	}
	if a.Compare(c) >= 0 || c.Compare(a) <= 0 {
		t.Fatalf("Expected %v < %v", a, c)
	}
}

func TestLibraryOrder(t *testing.T) {
	mustLibrary := func(source, selection string, stranding Stranding) Library {
		lib, err := NewLibrary([]string{source}, []string{selection}, stranding, nil)
		if err != nil {
			t.Fatal(err)
		}
		return lib
	}

	ordered := []Library{
		mustLibrary("DNA", "polyA", Reverse),
		mustLibrary("RNA", "polyA", Unstranded),
		mustLibrary("RNA", "polyA", Forward),
		mustLibrary("RNA", "total", Unstranded),
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Compare(ordered[i]) >= 0 {
			t.Fatalf("Expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestLibraryString(t *testing.T) {
	lib, err := NewLibrary([]string{"RNA"}, []string{"polyA"}, "u", map[string]string{"RIN": "7"})
	if err != nil {
		t.Fatal(err)
	}

	if s := lib.String(); !strings.Contains(s, "stranding=unstranded") || !strings.Contains(s, "RIN=7") {
		t.Fatalf("Unexpected string: %s", s)
	}
}
