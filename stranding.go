package seqproj

import (
	"fmt"
	"strings"
)

// Stranding describes whether a library preserves strand-of-origin
// information. Variants are ordered by declaration.
type Stranding uint8

const (
	Unstranded Stranding = iota
	Forward
	Reverse
	Unknown
)

var strandingNames = [...]string{
	Unstranded: "unstranded",
	Forward:    "forward",
	Reverse:    "reverse",
	Unknown:    "unknown",
}

var strandingAliases = map[string]Stranding{
	"u":          Unstranded,
	"unstranded": Unstranded,
	"f":          Forward,
	"forward":    Forward,
	"r":          Reverse,
	"reverse":    Reverse,
	"x":          Unknown,
	"unknown":    Unknown,
}

// NormalizeStranding accepts a Stranding or one of its case-insensitive
// aliases and returns the canonical variant.
func NormalizeStranding(value interface{}) (Stranding, error) {
	switch v := value.(type) {
	case Stranding:
		if v.valid() {
			return v, nil
		}
	case string:
		if s, exists := strandingAliases[strings.ToLower(v)]; exists {
			return s, nil
		}
	}

	return Unknown, fmt.Errorf("%w: unknown stranding: %v", ErrInvalidEnum, value)
}

func (s Stranding) valid() bool {
	return int(s) < len(strandingNames)
}

func (s Stranding) String() string {
	if !s.valid() {
		return fmt.Sprintf("Stranding(%d)", uint8(s))
	}

	return strandingNames[s]
}

func (s Stranding) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: unknown stranding: %d", ErrInvalidEnum, uint8(s))
	}

	return []byte(s.String()), nil
}

func (s *Stranding) UnmarshalText(text []byte) error {
	v, err := NormalizeStranding(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}
