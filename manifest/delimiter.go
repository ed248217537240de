package manifest

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// Manifests are comma, tab or semicolon delimited
var knownDelimiters = map[rune]struct{}{
	',':  {},
	'\t': {},
	';':  {},
}

// DetermineDelimiter returns the most likely delimiter of a CSV-like
// manifest, falling back to a comma.
func DetermineDelimiter(data []byte) rune {
	d := detector.New()
	for _, candidate := range d.DetectDelimiter(bytes.NewReader(data), '"') {
		if candidate == "" {
			continue
		}
		if r := rune(candidate[0]); isKnownDelimiter(r) {
			return r
		}
	}

	return ','
}

func isKnownDelimiter(r rune) bool {
	_, exists := knownDelimiters[r]
	return exists
}
