package rnaseq

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/carbocation/seqproj"
)

// SamplesheetRow is one line of an nf-core/rnaseq input samplesheet.
type SamplesheetRow struct {
	Sample       string `csv:"sample"`
	FastQ1       string `csv:"fastq_1"`
	FastQ2       string `csv:"fastq_2"`
	Strandedness string `csv:"strandedness"`
}

// nf-core/rnaseq infers strandedness itself when told "auto".
var strandedness = map[seqproj.Stranding]string{
	seqproj.Unstranded: "unstranded",
	seqproj.Forward:    "forward",
	seqproj.Reverse:    "reverse",
	seqproj.Unknown:    "auto",
}

// Samplesheet emits one row per sequencing run. All runs of an experiment
// share its descriptor, which nf-core/rnaseq uses to merge technical
// replicates.
func Samplesheet(exps []seqproj.Experiment, title TitleBuilder, separator string) ([]SamplesheetRow, error) {
	out := make([]SamplesheetRow, 0, len(exps))
	seen := make(map[string]string, len(exps))

	for _, exp := range exps {
		descriptor, err := FromBioExp(exp, title, separator)
		if err != nil {
			return nil, fmt.Errorf("experiment %s: %w", exp.Ind(), err)
		}

		// Distinct experiments must not collapse into one nf-core sample
		if other, exists := seen[descriptor]; exists {
			return nil, fmt.Errorf("experiments %s and %s have the same descriptor %q", other, exp.Ind(), descriptor)
		}
		seen[descriptor] = exp.Ind()

		if _, err := exp.Layout(); err != nil {
			return nil, err
		}

		for _, run := range exp.Runs() {
			files := run.Files()
			if len(files) != run.Layout().Files() {
				return nil, fmt.Errorf("%w: run %q of experiment %s has %d files", seqproj.ErrLayoutMismatch, run.Ind(), exp.Ind(), len(files))
			}
			row := SamplesheetRow{
				Sample:       descriptor,
				FastQ1:       files[0],
				Strandedness: strandedness[exp.Library().Stranding()],
			}
			if run.Layout() == seqproj.Paired {
				row.FastQ2 = files[1]
			}
			out = append(out, row)
		}
	}

	return out, nil
}

// WriteSamplesheet writes rows as CSV with a header line.
func WriteSamplesheet(w io.Writer, rows []SamplesheetRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
