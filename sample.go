package seqproj

import (
	"fmt"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Sample is the biological sample an experiment was performed on.
type Sample struct {
	ind         string
	organism    []string
	attributes  map[string]string
	description null.String
}

// NewSample validates and builds a Sample. organism is treated as a set and
// may be empty.
func NewSample(ind string, organism []string, attributes map[string]string, description null.String) (Sample, error) {
	if ind == "" {
		return Sample{}, fmt.Errorf("%w: sample index must be specified", ErrEmpty)
	}

	if description.Valid && description.String == "" {
		return Sample{}, fmt.Errorf("%w: sample %s", ErrEmptyDescription, ind)
	}

	return Sample{
		ind:         ind,
		organism:    uniqueSorted(organism),
		attributes:  copyAttributes(attributes),
		description: description,
	}, nil
}

func (s Sample) Ind() string { return s.ind }

func (s Sample) Organism() []string { return copyStrings(s.organism) }

func (s Sample) Attributes() map[string]string { return copyAttributes(s.attributes) }

func (s Sample) Description() null.String { return s.description }

func (s Sample) Equal(other Sample) bool {
	return s.ind == other.ind &&
		compareStrings(s.organism, other.organism) == 0 &&
		equalAttributes(s.attributes, other.attributes) &&
		s.description == other.description
}

func (s Sample) String() string {
	return fmt.Sprintf("Sample(%s, organism={%s}, attributes=%s, description=%s)",
		s.ind,
		strings.Join(s.organism, ", "),
		formatAttributes(s.attributes),
		formatNullString(s.description),
	)
}
