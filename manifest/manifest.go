// Package manifest loads sequencing run manifests: delimited tables with one
// row per run, optionally compressed and optionally stored in Google Storage.
package manifest

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"

	"github.com/carbocation/seqproj"
)

// Record is one manifest row. Optional columns may be blank.
type Record struct {
	Experiment        string `csv:"experiment"`
	Sample            string `csv:"sample"`
	Ind               string `csv:"ind"`
	Machine           string `csv:"machine"`
	Layout            string `csv:"layout"`
	File1             string `csv:"file_1"`
	File2             string `csv:"file_2"`
	Reads             string `csv:"reads"`
	Bases             string `csv:"bases"`
	Description       string `csv:"description"`
	SampleAttributes  string `csv:"sample_attributes"`
	SampleDescription string `csv:"sample_description"`

	// 1-based physical line in the manifest
	Line int `csv:"-"`
}

// Load opens, decompresses and parses a manifest. Relative file paths in the
// manifest are later resolved against the manifest's own directory.
func Load(ctx context.Context, path string, client *storage.Client) ([]Record, error) {
	rc, err := Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := ioutil.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	records, err := Read(bytes.NewReader(data), DetermineDelimiter(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// Read parses manifest rows. Blank lines and lines starting with # are
// ignored; Record.Line still refers to the physical line of each row.
func Read(r io.Reader, delim rune) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.Comment = '#'
	cr.LazyQuotes = true

	lr := &lineReader{Reader: cr}

	records := []Record{}
	if err := gocsv.UnmarshalCSV(lr, &records); err != nil {
		return nil, pfx.Err(err)
	}

	for i := range records {
		// lines[0] is the header
		if i+1 < len(lr.lines) {
			records[i].Line = lr.lines[i+1]
		}
	}

	return records, nil
}

// lineReader remembers the line each row started on.
type lineReader struct {
	*csv.Reader
	lines []int
}

func (l *lineReader) Read() ([]string, error) {
	row, err := l.Reader.Read()
	if err != nil {
		return row, err
	}

	line, _ := l.Reader.FieldPos(0)
	l.lines = append(l.lines, line)

	return row, nil
}

func (l *lineReader) ReadAll() ([][]string, error) {
	rows := [][]string{}
	for {
		row, err := l.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Base is the directory that relative read file paths in a manifest at path
// are relative to.
func Base(path string) string {
	if strings.HasPrefix(path, "gs://") {
		return ""
	}

	return filepath.Dir(ExpandHome(path))
}

// SeqRun validates the record as a sequencing run.
func (r Record) SeqRun(base string) (seqproj.SeqRun, error) {
	file1, file2 := strings.TrimSpace(r.File1), strings.TrimSpace(r.File2)
	if file1 == "" && file2 != "" {
		return seqproj.SeqRun{}, fmt.Errorf("line %d: %w: file_2 is set but file_1 is blank (run %s)", r.Line, seqproj.ErrEmpty, r.Ind)
	}

	files := make([]string, 0, 2)
	for _, f := range []string{file1, file2} {
		if f != "" {
			files = append(files, resolve(f, base))
		}
	}

	reads, err := parseCount(r.Reads)
	if err != nil {
		return seqproj.SeqRun{}, fmt.Errorf("line %d: reads: %w", r.Line, err)
	}

	bases, err := parseCount(r.Bases)
	if err != nil {
		return seqproj.SeqRun{}, fmt.Errorf("line %d: bases: %w", r.Line, err)
	}

	run, err := seqproj.NewSeqRun(r.Ind, r.Machine, r.Layout, files, reads, bases, optionalText(r.Description))
	if err != nil {
		return seqproj.SeqRun{}, fmt.Errorf("line %d: %w", r.Line, err)
	}

	return run, nil
}

// Blank means "not recorded"
func parseCount(value string) (null.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return null.Int{}, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return null.Int{}, err
	}

	return null.IntFrom(n), nil
}

func optionalText(value string) null.String {
	if value == "" {
		return null.String{}
	}

	return null.StringFrom(value)
}

// ParseAttributes reads "key=value;key=value" pairs. Whitespace around keys
// and values is trimmed and empty entries are skipped.
func ParseAttributes(value string) (map[string]string, error) {
	out := make(map[string]string)
	for _, pair := range strings.Split(value, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}

		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			return nil, fmt.Errorf("attribute %q is not in key=value form", pair)
		}

		key := strings.TrimSpace(kv[0])
		if _, exists := out[key]; exists {
			return nil, fmt.Errorf("attribute %q is given more than once", key)
		}
		out[key] = strings.TrimSpace(kv[1])
	}

	return out, nil
}
