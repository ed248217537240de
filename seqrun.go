package seqproj

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// SeqRun is a single run in a sequencing experiment. It is immutable once
// constructed; use NewSeqRun.
type SeqRun struct {
	ind     string // Should be unique within the project
	machine string // E.g., 'Illumina NovaSeq 6000'
	layout  SeqLayout
	files   []string

	// Optional metadata
	reads       null.Int
	bases       null.Int
	description null.String
}

// NewSeqRun validates and builds a SeqRun. layout may be a SeqLayout or one
// of its aliases. A paired-end run needs exactly two files, a single-end run
// exactly one. reads and bases, if valid, must be positive. description, if
// valid, must be non-empty.
func NewSeqRun(ind, machine string, layout interface{}, files []string, reads, bases null.Int, description null.String) (SeqRun, error) {
	run := SeqRun{
		ind:         ind,
		machine:     machine,
		files:       copyStrings(files),
		reads:       reads,
		bases:       bases,
		description: description,
	}

	if run.ind == "" {
		return SeqRun{}, fmt.Errorf("%w: sequencing run index must be specified", ErrEmpty)
	}

	if run.machine == "" {
		return SeqRun{}, fmt.Errorf("%w: sequencing machine must be specified (run %s)", ErrEmpty, ind)
	}

	l, err := NormalizeSeqLayout(layout)
	if err != nil {
		return SeqRun{}, fmt.Errorf("run %s: %w", ind, err)
	}
	run.layout = l

	if len(run.files) == 0 {
		return SeqRun{}, fmt.Errorf("%w: sequencing files must be specified (run %s)", ErrEmpty, ind)
	}

	switch run.layout {
	case Paired:
		if len(run.files) != 2 {
			return SeqRun{}, fmt.Errorf("%w: paired-end sequencing requires two files, got %d (run %s)", ErrLayoutMismatch, len(run.files), ind)
		}
	case Single:
		if len(run.files) != 1 {
			return SeqRun{}, fmt.Errorf("%w: single-end sequencing requires one file, got %d (run %s)", ErrLayoutMismatch, len(run.files), ind)
		}
	}

	if run.reads.Valid && run.reads.Int64 <= 0 {
		return SeqRun{}, fmt.Errorf("%w: total number of reads is %d (run %s)", ErrNotPositive, run.reads.Int64, ind)
	}

	if run.bases.Valid && run.bases.Int64 <= 0 {
		return SeqRun{}, fmt.Errorf("%w: total number of bases is %d (run %s)", ErrNotPositive, run.bases.Int64, ind)
	}

	if run.description.Valid && run.description.String == "" {
		return SeqRun{}, fmt.Errorf("%w: use an invalid null.String to indicate lack of description (run %s)", ErrEmptyDescription, ind)
	}

	return run, nil
}

func (r SeqRun) Ind() string { return r.ind }

func (r SeqRun) Machine() string { return r.machine }

func (r SeqRun) Layout() SeqLayout { return r.layout }

// Files returns the read files in order; two for paired-end runs.
func (r SeqRun) Files() []string { return copyStrings(r.files) }

func (r SeqRun) Reads() null.Int { return r.reads }

func (r SeqRun) Bases() null.Int { return r.bases }

func (r SeqRun) Description() null.String { return r.description }

func (r SeqRun) Equal(other SeqRun) bool {
	return r.Compare(other) == 0
}

// Compare orders runs field by field in declaration order. Absent optional
// values sort before present ones.
func (r SeqRun) Compare(other SeqRun) int {
	if c := strings.Compare(r.ind, other.ind); c != 0 {
		return c
	}
	if c := strings.Compare(r.machine, other.machine); c != 0 {
		return c
	}
	if c := compareInts(int64(r.layout), int64(other.layout)); c != 0 {
		return c
	}
	if c := compareStrings(r.files, other.files); c != 0 {
		return c
	}
	if c := compareNullInts(r.reads, other.reads); c != 0 {
		return c
	}
	if c := compareNullInts(r.bases, other.bases); c != 0 {
		return c
	}

	return compareNullStrings(r.description, other.description)
}

func (r SeqRun) Hash() [32]byte {
	d := newDigest("SeqRun")
	d.writeString(r.ind)
	d.writeString(r.machine)
	d.uvarint(uint64(r.layout))
	d.writeStrings(r.files)
	d.writeNullInt(r.reads)
	d.writeNullInt(r.bases)
	d.writeNullString(r.description)

	return d.sum()
}

func (r SeqRun) String() string {
	fields := []string{
		"\tMachine: " + r.machine,
		"\tLayout: " + r.layout.String(),
		"\tFiles: " + strings.Join(r.files, ", "),
		"\tReads: " + formatNullInt(r.reads),
		"\tBases: " + formatNullInt(r.bases),
		"\tDescription: " + formatNullString(r.description),
	}

	return fmt.Sprintf("SeqRun(%s):\n%s", r.ind, strings.Join(fields, "\n"))
}

func formatNullInt(n null.Int) string {
	if !n.Valid {
		return "."
	}

	return strconv.FormatInt(n.Int64, 10)
}

func formatNullString(n null.String) string {
	if !n.Valid {
		return "."
	}

	return n.String
}
