package manifest

import (
	"fmt"

	"gopkg.in/guregu/null.v3"

	"github.com/carbocation/seqproj"
)

type experimentRows struct {
	ind     string
	records []Record
}

// Experiments groups records by their experiment column, in order of first
// appearance, and builds one Experiment per group. Every experiment gets the
// same library. A blank sample column names the sample after the experiment.
// Rows of one experiment must agree on sample, sample attributes and sample
// description.
func Experiments(records []Record, library seqproj.Library, base string) ([]seqproj.Experiment, error) {
	groups := []*experimentRows{}
	byInd := make(map[string]*experimentRows)

	for _, rec := range records {
		if rec.Experiment == "" {
			return nil, fmt.Errorf("line %d: %w: experiment must be specified", rec.Line, seqproj.ErrEmpty)
		}

		g, exists := byInd[rec.Experiment]
		if !exists {
			g = &experimentRows{ind: rec.Experiment}
			byInd[rec.Experiment] = g
			groups = append(groups, g)
		}
		g.records = append(g.records, rec)
	}

	out := make([]seqproj.Experiment, 0, len(groups))
	for _, g := range groups {
		exp, err := g.build(library, base)
		if err != nil {
			return nil, err
		}
		out = append(out, exp)
	}

	return out, nil
}

func (g *experimentRows) build(library seqproj.Library, base string) (seqproj.Experiment, error) {
	first := g.records[0]
	for _, rec := range g.records[1:] {
		if rec.Sample != first.Sample || rec.SampleAttributes != first.SampleAttributes || rec.SampleDescription != first.SampleDescription {
			return seqproj.Experiment{}, fmt.Errorf("line %d: sample columns of experiment %s differ from line %d", rec.Line, g.ind, first.Line)
		}
	}

	attributes, err := ParseAttributes(first.SampleAttributes)
	if err != nil {
		return seqproj.Experiment{}, fmt.Errorf("line %d: %w", first.Line, err)
	}

	sampleInd := first.Sample
	if sampleInd == "" {
		sampleInd = g.ind
	}

	sample, err := seqproj.NewSample(sampleInd, nil, attributes, optionalText(first.SampleDescription))
	if err != nil {
		return seqproj.Experiment{}, fmt.Errorf("line %d: %w", first.Line, err)
	}

	runs := make([]seqproj.SeqRun, 0, len(g.records))
	for _, rec := range g.records {
		run, err := rec.SeqRun(base)
		if err != nil {
			return seqproj.Experiment{}, err
		}
		runs = append(runs, run)
	}

	return seqproj.NewExperiment(g.ind, sample, library, runs, nil, null.String{})
}
