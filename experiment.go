package seqproj

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Experiment ties a sample, the library made from it and the runs that
// sequenced that library.
type Experiment struct {
	ind         string
	sample      Sample
	library     Library
	runs        []SeqRun
	attributes  map[string]string
	description null.String
}

// NewExperiment validates and builds an Experiment. At least one run is
// required and run indices must be unique within the experiment.
func NewExperiment(ind string, sample Sample, library Library, runs []SeqRun, attributes map[string]string, description null.String) (Experiment, error) {
	if ind == "" {
		return Experiment{}, fmt.Errorf("%w: experiment index must be specified", ErrEmpty)
	}

	if len(runs) == 0 {
		return Experiment{}, fmt.Errorf("%w: experiment %s has no sequencing runs", ErrEmpty, ind)
	}

	// Zero values bypass the constructors, so check what they guarantee
	if sample.ind == "" {
		return Experiment{}, fmt.Errorf("%w: experiment %s has an unconstructed sample", ErrEmpty, ind)
	}

	if len(library.source) == 0 || len(library.selection) == 0 {
		return Experiment{}, fmt.Errorf("%w: experiment %s has an unconstructed library", ErrEmpty, ind)
	}

	seen := make(map[string]struct{}, len(runs))
	for i, run := range runs {
		if run.ind == "" || len(run.files) == 0 {
			return Experiment{}, fmt.Errorf("%w: run %d of experiment %s is unconstructed", ErrEmpty, i+1, ind)
		}
		if _, exists := seen[run.Ind()]; exists {
			return Experiment{}, fmt.Errorf("%w: %s in experiment %s", ErrDuplicateRun, run.Ind(), ind)
		}
		seen[run.Ind()] = struct{}{}
	}

	if description.Valid && description.String == "" {
		return Experiment{}, fmt.Errorf("%w: experiment %s", ErrEmptyDescription, ind)
	}

	out := Experiment{
		ind:         ind,
		sample:      sample,
		library:     library,
		runs:        make([]SeqRun, len(runs)),
		attributes:  copyAttributes(attributes),
		description: description,
	}
	copy(out.runs, runs)

	return out, nil
}

func (e Experiment) Ind() string { return e.ind }

func (e Experiment) Sample() Sample { return e.sample }

func (e Experiment) Library() Library { return e.library }

// Runs returns the sequencing runs in the order they were given.
func (e Experiment) Runs() []SeqRun {
	out := make([]SeqRun, len(e.runs))
	copy(out, e.runs)
	return out
}

func (e Experiment) Attributes() map[string]string { return copyAttributes(e.attributes) }

func (e Experiment) Description() null.String { return e.description }

// Layout returns the layout shared by every run of the experiment.
func (e Experiment) Layout() (SeqLayout, error) {
	if len(e.runs) == 0 {
		return Paired, fmt.Errorf("%w: experiment %q has no sequencing runs", ErrEmpty, e.ind)
	}

	layout := e.runs[0].Layout()
	for _, run := range e.runs[1:] {
		if run.Layout() != layout {
			return layout, fmt.Errorf("%w: experiment %s mixes %s and %s", ErrMixedLayout, e.ind, layout, run.Layout())
		}
	}

	return layout, nil
}

// The accessors below let an Experiment be formatted by nfcore/rnaseq.

func (e Experiment) ExperimentInd() string { return e.ind }

func (e Experiment) SampleAttributes() map[string]string { return e.sample.Attributes() }

func (e Experiment) SampleDescription() null.String { return e.sample.description }

func (e Experiment) SampleInd() string { return e.sample.ind }
