// Package forest maintains a registry of named nodes arranged as a forest of
// parent-child trees.
//
// This package provides:
// - Lazy node creation by name on insertion
// - Reparenting when a child is inserted under a new parent
// - Child and ancestor queries that never fail
// - A deterministic box-drawing rendering of every tree
//
// A Forest is not safe for concurrent use. Callers sharing one across
// goroutines must guard the whole Forest with a single mutex.
package forest

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned when a caller passes an empty name.
var ErrInvalidArgument = errors.New("invalid argument")

// node is one member of the arena. Parent and children are stored as names
// that resolve through the owning Forest, so nodes never hold each other.
type node struct {
	name     string
	parent   string // empty for a root
	children []string
}

// Edge is a single parent -> child link. An Edge with an empty Child stands
// for a member that has no parent and no children.
type Edge struct {
	Parent string
	Child  string
}

// Lone reports whether e names a single member rather than a link.
func (e Edge) Lone() bool {
	return e.Child == ""
}

// Forest owns every node, keyed by name.
type Forest struct {
	members map[string]*node
}

// New creates an empty forest.
func New() *Forest {
	return &Forest{
		members: make(map[string]*node),
	}
}

// getOrCreate resolves name to its node, creating a root node on first use.
func (f *Forest) getOrCreate(name string) *node {
	n, ok := f.members[name]
	if !ok {
		n = &node{name: name}
		f.members[name] = n
	}
	return n
}

// Insert places child under parent, creating either node if it does not
// exist yet. If child already sits under a different parent it is moved.
// Re-inserting an existing link is a no-op.
//
// Insert does not check for cycles. Inserting a node under itself or under
// one of its own descendants is accepted; the affected nodes stop being
// reachable from any root, and AncestorsOf on them never returns.
func (f *Forest) Insert(parent, child string) error {
	if parent == "" {
		return fmt.Errorf("%w: empty parent name", ErrInvalidArgument)
	}
	if child == "" {
		return fmt.Errorf("%w: empty child name", ErrInvalidArgument)
	}

	p := f.getOrCreate(parent)
	c := f.getOrCreate(child)

	if c.parent == p.name {
		return nil
	}

	if c.parent != "" {
		if old, ok := f.members[c.parent]; ok {
			old.removeChild(c.name)
		}
	}

	c.parent = p.name
	p.children = append(p.children, c.name)
	return nil
}

// Add registers name as a member without linking it. Existing members are
// left untouched.
func (f *Forest) Add(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidArgument)
	}
	f.getOrCreate(name)
	return nil
}

// Apply replays one entry produced by Edges: Add for a lone member, Insert
// otherwise.
func (f *Forest) Apply(e Edge) error {
	if e.Lone() {
		return f.Add(e.Parent)
	}
	return f.Insert(e.Parent, e.Child)
}

// removeChild drops the first occurrence of name. A missing entry is ignored.
func (n *node) removeChild(name string) {
	for i, kid := range n.children {
		if kid == name {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// ChildrenOf returns the direct children of name in insertion order.
// Unknown names yield an empty slice.
func (f *Forest) ChildrenOf(name string) []string {
	n, ok := f.members[name]
	if !ok {
		return []string{}
	}
	out := make([]string, len(n.children))
	copy(out, n.children)
	return out
}

// AncestorsOf returns the chain from the immediate parent of name up to its
// root. Unknown names and roots yield an empty slice.
//
// The walk stops only at a node without a parent, so it does not terminate
// for a node that Insert has placed on a cycle.
func (f *Forest) AncestorsOf(name string) []string {
	ancestors := []string{}
	n, ok := f.members[name]
	if !ok {
		return ancestors
	}
	for n.parent != "" {
		ancestors = append(ancestors, n.parent)
		n = f.members[n.parent]
	}
	return ancestors
}

// Parent reports the parent of name, if it has one.
func (f *Forest) Parent(name string) (string, bool) {
	n, ok := f.members[name]
	if !ok || n.parent == "" {
		return "", false
	}
	return n.parent, true
}

// Has reports whether name is a member.
func (f *Forest) Has(name string) bool {
	_, ok := f.members[name]
	return ok
}

// Len returns the number of members.
func (f *Forest) Len() int {
	return len(f.members)
}

// Roots returns the names of all parentless nodes in ascending order.
func (f *Forest) Roots() []string {
	roots := []string{}
	for name, n := range f.members {
		if n.parent == "" {
			roots = append(roots, name)
		}
	}
	sort.Strings(roots)
	return roots
}

// Edges lists every link reachable from a root, depth first, with roots in
// ascending order and children in stored order. A root without children is
// listed as a lone Edge. Replaying the result through Apply on an empty
// Forest rebuilds the same trees. Members on a cycle are not reachable from
// any root and are not listed.
func (f *Forest) Edges() []Edge {
	var edges []Edge
	stack := []string{}
	roots := f.Roots()
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.members[name]
		if n.parent == "" && len(n.children) == 0 {
			edges = append(edges, Edge{Parent: name})
			continue
		}
		for _, kid := range n.children {
			edges = append(edges, Edge{Parent: name, Child: kid})
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return edges
}
