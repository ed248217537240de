package seqproj

import (
	"fmt"
	"strings"
)

// Library describes how a sequencing library was made from a biological
// sample. It is immutable once constructed; use NewLibrary.
type Library struct {
	source     []string // What molecules were used to generate the library
	selection  []string // Selection/enrichment steps
	stranding  Stranding
	attributes map[string]string // E.g., {"RIP Ab": "Z22", "RIN": "7"}
}

// NewLibrary validates and builds a Library. source and selection are
// treated as sets and must each contain at least one element. stranding may
// be a Stranding or one of its string aliases. attributes may be nil.
func NewLibrary(source, selection []string, stranding interface{}, attributes map[string]string) (Library, error) {
	lib := Library{
		source:     uniqueSorted(source),
		selection:  uniqueSorted(selection),
		attributes: copyAttributes(attributes),
	}

	if len(lib.source) == 0 {
		return Library{}, fmt.Errorf("%w: library source must be specified", ErrEmpty)
	}

	if len(lib.selection) == 0 {
		return Library{}, fmt.Errorf("%w: library selection method must be specified", ErrEmpty)
	}

	s, err := NormalizeStranding(stranding)
	if err != nil {
		return Library{}, err
	}
	lib.stranding = s

	return lib, nil
}

// Source returns the sorted source set.
func (l Library) Source() []string { return copyStrings(l.source) }

// Selection returns the sorted selection set.
func (l Library) Selection() []string { return copyStrings(l.selection) }

func (l Library) Stranding() Stranding { return l.stranding }

func (l Library) Attributes() map[string]string { return copyAttributes(l.attributes) }

func (l Library) Equal(other Library) bool {
	return l.Compare(other) == 0
}

// Compare orders libraries by source, selection, stranding and attributes.
func (l Library) Compare(other Library) int {
	if c := compareStrings(l.source, other.source); c != 0 {
		return c
	}
	if c := compareStrings(l.selection, other.selection); c != 0 {
		return c
	}
	if c := compareInts(int64(l.stranding), int64(other.stranding)); c != 0 {
		return c
	}

	return compareAttributes(l.attributes, other.attributes)
}

// Hash is stable across processes: equal libraries have equal hashes.
func (l Library) Hash() [32]byte {
	d := newDigest("Library")
	d.writeStrings(l.source)
	d.writeStrings(l.selection)
	d.uvarint(uint64(l.stranding))
	d.writeAttributes(l.attributes)

	return d.sum()
}

func (l Library) String() string {
	return fmt.Sprintf("Library(source={%s}, selection={%s}, stranding=%s, attributes=%s)",
		strings.Join(l.source, ", "),
		strings.Join(l.selection, ", "),
		l.stranding,
		formatAttributes(l.attributes),
	)
}

func formatAttributes(attributes map[string]string) string {
	pairs := make([]string, 0, len(attributes))
	for _, k := range sortedKeys(attributes) {
		pairs = append(pairs, k+"="+attributes[k])
	}

	return "{" + strings.Join(pairs, ", ") + "}"
}
