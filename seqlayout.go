package seqproj

import (
	"fmt"
	"strings"
)

// SeqLayout is the read layout of a sequencing run.
type SeqLayout uint8

const (
	Paired SeqLayout = iota
	Single
)

var seqLayoutNames = [...]string{
	Paired: "paired",
	Single: "single",
}

// Number of read files produced by each layout
var seqLayoutFiles = [...]int{
	Paired: 2,
	Single: 1,
}

var seqLayoutAliases = map[string]SeqLayout{
	"paired": Paired,
	"pe":     Paired,
	"single": Single,
	"se":     Single,
}

// NormalizeSeqLayout accepts a SeqLayout or one of the case-insensitive
// aliases paired/pe and single/se.
func NormalizeSeqLayout(value interface{}) (SeqLayout, error) {
	switch v := value.(type) {
	case SeqLayout:
		if v.valid() {
			return v, nil
		}
	case string:
		if l, exists := seqLayoutAliases[strings.ToLower(v)]; exists {
			return l, nil
		}
	}

	return Paired, fmt.Errorf("%w: unknown sequencing layout: %v", ErrInvalidEnum, value)
}

func (l SeqLayout) valid() bool {
	return int(l) < len(seqLayoutNames)
}

// Name is the short form, e.g. "paired".
func (l SeqLayout) Name() string {
	if !l.valid() {
		return fmt.Sprintf("SeqLayout(%d)", uint8(l))
	}

	return seqLayoutNames[l]
}

// String is the long form, e.g. "paired-end".
func (l SeqLayout) String() string {
	if !l.valid() {
		return l.Name()
	}

	return l.Name() + "-end"
}

// Files is the number of read files a run with this layout must have.
func (l SeqLayout) Files() int {
	if !l.valid() {
		return 0
	}

	return seqLayoutFiles[l]
}

func (l SeqLayout) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: unknown sequencing layout: %d", ErrInvalidEnum, uint8(l))
	}

	return []byte(l.Name()), nil
}

func (l *SeqLayout) UnmarshalText(text []byte) error {
	v, err := NormalizeSeqLayout(string(text))
	if err != nil {
		return err
	}
	*l = v

	return nil
}
