// Package rnaseq formats sequencing experiments for nf-core/rnaseq design
// files. A descriptor joins the experiment index and a human-readable title,
// e.g. "exp1+Ab=Z22_RIN=7", and must not contain the characters the design
// file format reserves.
package rnaseq

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/guregu/null.v3"
)

const DefaultSeparator = "+"

// Characters that delimit fields in nf-core design files
var prohibitedChars = []string{",", "|", "/", "[", "]"}

var (
	ErrMissingAttribute = errors.New("attribute not found in the sample attributes")
	ErrNoTitle          = errors.New("no tags or description available for the sample")
	ErrProhibitedChar   = errors.New("descriptor contains prohibited character")
)

// Experiment is the view of an experiment needed to build a descriptor.
// seqproj.Experiment satisfies it.
type Experiment interface {
	ExperimentInd() string
	SampleInd() string
	SampleAttributes() map[string]string
	SampleDescription() null.String
}

// TitleBuilder turns an experiment into the title half of its descriptor.
type TitleBuilder func(exp Experiment) (string, error)

// AttributeTitle uses the value of a single sample attribute as the title.
func AttributeTitle(attribute string) TitleBuilder {
	return func(exp Experiment) (string, error) {
		value, exists := exp.SampleAttributes()[attribute]
		if !exists {
			return "", fmt.Errorf("%w: %q (sample %s)", ErrMissingAttribute, attribute, exp.SampleInd())
		}

		return value, nil
	}
}

// AttributesTitle joins every sample attribute as key=value, sorted by key,
// with underscores. Without attributes it falls back to the sample
// description. This is the policy FromBioExp uses when given a nil builder.
func AttributesTitle(exp Experiment) (string, error) {
	attributes := exp.SampleAttributes()

	keys := make([]string, 0, len(attributes))
	for k := range attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+attributes[k])
	}

	// If no tags are present, use the sample description
	if len(parts) == 0 {
		description := exp.SampleDescription()
		if !description.Valid {
			return "", fmt.Errorf("%w (sample %s)", ErrNoTitle, exp.SampleInd())
		}
		parts = append(parts, description.String)
	}

	return strings.Join(parts, "_"), nil
}

// FromBioExp builds "<experiment index><separator><title>". A nil title uses
// AttributesTitle.
func FromBioExp(exp Experiment, title TitleBuilder, separator string) (string, error) {
	if title == nil {
		title = AttributesTitle
	}

	t, err := title(exp)
	if err != nil {
		return "", err
	}

	descriptor := exp.ExperimentInd() + separator + t
	for _, char := range prohibitedChars {
		if strings.Contains(descriptor, char) {
			return "", fmt.Errorf("%w: descriptor %q contains %q", ErrProhibitedChar, descriptor, char)
		}
	}

	return descriptor, nil
}

// ToExpInd extracts the experiment index from a descriptor: everything
// before the first separator, or the whole descriptor if there is none.
func ToExpInd(descriptor, separator string) string {
	if separator == "" {
		return descriptor
	}

	return strings.SplitN(descriptor, separator, 2)[0]
}
