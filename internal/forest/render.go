package forest

import "strings"

// Box-drawing pieces used by Render.
const (
	connectorMid  = "├── "
	connectorLast = "└── "
	barOpen       = "│   "
	barClosed     = "    "
	rootIndent    = " "
)

// Style decorates rendered text. Nil fields leave text unchanged.
type Style struct {
	Root   func(string) string // root names
	Name   func(string) string // non-root names
	Branch func(string) string // indentation and connector glyphs
}

func apply(fn func(string) string, s string) string {
	if fn == nil {
		return s
	}
	return fn(s)
}

// frame is one pending line of output on the render stack.
type frame struct {
	name   string
	prefix string
	last   bool
}

// Render draws every tree in the forest. Roots appear in ascending name
// order, each followed by its descendants in insertion order, with a blank
// line between trees:
//
//	Grandpa
//	 ├── Dad
//	 │   ├── You
//	 │   └── Sister
//	 └── Uncle
//
// An empty forest renders as the empty string.
func (f *Forest) Render() string {
	return f.RenderStyled(Style{})
}

// RenderStyled is Render with decorators applied to names and glyphs. The
// layout is identical to Render.
func (f *Forest) RenderStyled(style Style) string {
	var b strings.Builder
	roots := f.Roots()
	for i, root := range roots {
		b.WriteString(apply(style.Root, root))
		b.WriteByte('\n')
		f.renderSubtree(&b, f.members[root], style)
		if i != len(roots)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderSubtree writes the descendants of root using an explicit stack so
// that long chains do not grow the goroutine stack.
func (f *Forest) renderSubtree(b *strings.Builder, root *node, style Style) {
	var stack []frame
	push := func(children []string, prefix string) {
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				name:   children[i],
				prefix: prefix,
				last:   i == len(children)-1,
			})
		}
	}

	push(root.children, rootIndent)
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		connector, bar := connectorMid, barOpen
		if fr.last {
			connector, bar = connectorLast, barClosed
		}
		b.WriteString(apply(style.Branch, fr.prefix+connector))
		b.WriteString(apply(style.Name, fr.name))
		b.WriteByte('\n')

		push(f.members[fr.name].children, fr.prefix+bar)
	}
}
