package seqproj

import (
	"encoding/binary"
	"hash"
	"sort"
	"strings"

	"github.com/minio/blake2b-simd"
	"gopkg.in/guregu/null.v3"
)

// Sets and maps are kept in sorted order so that equality, ordering and
// hashing do not depend on insertion order.

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

func copyStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func copyAttributes(attributes map[string]string) map[string]string {
	out := make(map[string]string, len(attributes))
	for k, v := range attributes {
		out[k] = v
	}
	return out
}

func sortedKeys(attributes map[string]string) []string {
	keys := make([]string, 0, len(attributes))
	for k := range attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func compareStrings(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return compareInts(int64(len(a)), int64(len(b)))
}

// compareAttributes orders maps as their sorted (key, value) sequences.
func compareAttributes(a, b map[string]string) int {
	ak, bk := sortedKeys(a), sortedKeys(b)
	for i := 0; i < len(ak) && i < len(bk); i++ {
		if c := strings.Compare(ak[i], bk[i]); c != 0 {
			return c
		}
		if c := strings.Compare(a[ak[i]], b[bk[i]]); c != 0 {
			return c
		}
	}

	return compareInts(int64(len(ak)), int64(len(bk)))
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Absent sorts before present.
func compareNullInts(a, b null.Int) int {
	if a.Valid != b.Valid {
		if a.Valid {
			return 1
		}
		return -1
	}

	return compareInts(a.Int64, b.Int64)
}

func compareNullStrings(a, b null.String) int {
	if a.Valid != b.Valid {
		if a.Valid {
			return 1
		}
		return -1
	}

	return strings.Compare(a.String, b.String)
}

func equalAttributes(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, exists := b[k]; !exists || w != v {
			return false
		}
	}
	return true
}

// digest writes a length-prefixed canonical serialization into a BLAKE2b-256
// hash. Every field is written in declaration order.
type digest struct {
	h   hash.Hash
	buf [binary.MaxVarintLen64]byte
}

func newDigest(kind string) *digest {
	d := &digest{h: blake2b.New256()}
	d.writeString(kind)
	return d
}

func (d *digest) uvarint(v uint64) {
	n := binary.PutUvarint(d.buf[:], v)
	d.h.Write(d.buf[:n])
}

func (d *digest) writeString(s string) {
	d.uvarint(uint64(len(s)))
	d.h.Write([]byte(s))
}

func (d *digest) writeStrings(values []string) {
	d.uvarint(uint64(len(values)))
	for _, v := range values {
		d.writeString(v)
	}
}

func (d *digest) writeAttributes(attributes map[string]string) {
	keys := sortedKeys(attributes)
	d.uvarint(uint64(len(keys)))
	for _, k := range keys {
		d.writeString(k)
		d.writeString(attributes[k])
	}
}

func (d *digest) writeNullInt(n null.Int) {
	if !n.Valid {
		d.uvarint(0)
		return
	}
	d.uvarint(1)
	d.uvarint(uint64(n.Int64))
}

func (d *digest) writeNullString(s null.String) {
	if !s.Valid {
		d.uvarint(0)
		return
	}
	d.uvarint(1)
	d.writeString(s.String)
}

func (d *digest) sum() [32]byte {
	var out [32]byte
	copy(out[:], d.h.Sum(nil))
	return out
}
