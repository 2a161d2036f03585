// Package fingerprint computes BLAKE3 digests of forest structure.
package fingerprint

import (
	"bytes"
	"encoding/hex"

	"github.com/javanhut/lineage/internal/forest"
	"lukechampine.com/blake3"
)

// Hash represents a BLAKE3-256 hash value.
type Hash [32]byte

// String returns the hexadecimal representation of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 12 hex characters, enough for display.
func (h Hash) Short() string {
	return h.String()[:12]
}

// Sum computes the BLAKE3 hash of the given data.
func Sum(data []byte) Hash {
	return blake3.Sum256(data)
}

// EdgeLister is anything that can enumerate its links in a canonical order.
type EdgeLister interface {
	Edges() []forest.Edge
}

// CanonicalBytes encodes the edges of src as parent, NUL, child, newline per
// edge, so names containing spaces or arrows cannot collide.
func CanonicalBytes(src EdgeLister) []byte {
	var buf bytes.Buffer
	for _, e := range src.Edges() {
		buf.WriteString(e.Parent)
		buf.WriteByte(0)
		buf.WriteString(e.Child)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Of digests the canonical encoding of src.
func Of(src EdgeLister) Hash {
	return Sum(CanonicalBytes(src))
}
