// Package edgefile reads and writes edge lists that populate a forest.
//
// The text format has one link per line:
//
//	# comment
//	Grandpa -> Dad
//	Dad -> You
//	Hermit
//
// A line holding a bare name records a member with no parent and no
// children. Blank lines and lines starting with '#' are skipped. Names are
// trimmed and may contain inner spaces. Input that starts with a zstd frame
// header is decompressed transparently.
package edgefile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/javanhut/lineage/internal/forest"
	"github.com/klauspost/compress/zstd"
)

// Arrow separates parent from child.
const Arrow = "->"

// ErrMalformed is returned for lines that are not a valid edge.
var ErrMalformed = errors.New("malformed edge")

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ParseEdge parses a single "parent -> child" expression.
func ParseEdge(s string) (forest.Edge, error) {
	parent, child, ok := strings.Cut(s, Arrow)
	if !ok {
		return forest.Edge{}, fmt.Errorf("%w: missing %q in %q", ErrMalformed, Arrow, s)
	}
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" || child == "" {
		return forest.Edge{}, fmt.Errorf("%w: empty name in %q", ErrMalformed, s)
	}
	if strings.Contains(child, Arrow) {
		return forest.Edge{}, fmt.Errorf("%w: more than one %q in %q", ErrMalformed, Arrow, s)
	}
	return forest.Edge{Parent: parent, Child: child}, nil
}

// parseLine accepts either an edge or a bare member name.
func parseLine(line string) (forest.Edge, error) {
	if !strings.Contains(line, Arrow) {
		return forest.Edge{Parent: line}, nil
	}
	return ParseEdge(line)
}

// checkName reports names that would not survive a write and read.
func checkName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrMalformed)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: outer whitespace in %q", ErrMalformed, name)
	case strings.HasPrefix(name, "#"):
		return fmt.Errorf("%w: name %q starts with '#'", ErrMalformed, name)
	case strings.Contains(name, Arrow):
		return fmt.Errorf("%w: name %q contains %q", ErrMalformed, name, Arrow)
	case strings.ContainsAny(name, "\r\n"):
		return fmt.Errorf("%w: line break in %q", ErrMalformed, name)
	}
	return nil
}

// Read parses every edge from r. Bare names come back as lone edges.
func Read(r io.Reader) ([]forest.Edge, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var src io.Reader = br
	if bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		src = dec
	}

	var edges []forest.Edge
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		edge, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		edges = append(edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan edges: %w", err)
	}
	return edges, nil
}

// Load reads edges from r and applies them to f in file order. It returns
// the number of edges applied.
func Load(f *forest.Forest, r io.Reader) (int, error) {
	edges, err := Read(r)
	if err != nil {
		return 0, err
	}
	for i, e := range edges {
		if err := f.Apply(e); err != nil {
			return i, fmt.Errorf("apply %s %s %s: %w", e.Parent, Arrow, e.Child, err)
		}
	}
	return len(edges), nil
}

// LoadFile opens path and calls Load.
func LoadFile(f *forest.Forest, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open edge file: %w", err)
	}
	defer file.Close()

	n, err := Load(f, file)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Write emits edges in the text format, zstd-compressed when compress is set.
// Names the format cannot carry are rejected with ErrMalformed before
// anything is written.
func Write(w io.Writer, edges []forest.Edge, compress bool) error {
	var buf bytes.Buffer
	for _, e := range edges {
		if err := checkName(e.Parent); err != nil {
			return err
		}
		if e.Lone() {
			fmt.Fprintf(&buf, "%s\n", e.Parent)
			continue
		}
		if err := checkName(e.Child); err != nil {
			return err
		}
		fmt.Fprintf(&buf, "%s %s %s\n", e.Parent, Arrow, e.Child)
	}

	if !compress {
		_, err := w.Write(buf.Bytes())
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := enc.Write(buf.Bytes()); err != nil {
		enc.Close()
		return fmt.Errorf("zstd write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("zstd close: %w", err)
	}
	return nil
}

// WriteFile writes edges to path, replacing any existing file. Nothing is
// written if an edge is rejected.
func WriteFile(path string, edges []forest.Edge, compress bool) error {
	var buf bytes.Buffer
	if err := Write(&buf, edges, compress); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write edge file: %w", err)
	}
	return nil
}
