package forest

import (
	"fmt"
	"strings"
	"testing"
)

func TestRenderFamily(t *testing.T) {
	f := familyForest(t)

	want := "Grandpa\n" +
		" ├── Dad\n" +
		" │   ├── You\n" +
		" │   └── Sister\n" +
		" └── Uncle\n"
	if got := f.Render(); got != want {
		t.Errorf("Render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMultipleRoots(t *testing.T) {
	f := New()
	// RootB is inserted first but must render second.
	mustInsert(t, f, "RootB", "child3")
	mustInsert(t, f, "RootA", "child1")
	mustInsert(t, f, "child1", "grandchild")
	mustInsert(t, f, "RootA", "child2")

	want := "RootA\n" +
		" ├── child1\n" +
		" │   └── grandchild\n" +
		" └── child2\n" +
		"\n" +
		"RootB\n" +
		" └── child3\n"
	if got := f.Render(); got != want {
		t.Errorf("Render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderClosedBranch(t *testing.T) {
	f := New()
	mustInsert(t, f, "A", "B")
	mustInsert(t, f, "B", "C")
	mustInsert(t, f, "B", "D")
	mustInsert(t, f, "D", "E")

	want := "A\n" +
		" └── B\n" +
		"     ├── C\n" +
		"     └── D\n" +
		"         └── E\n"
	if got := f.Render(); got != want {
		t.Errorf("Render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderChildrenKeepInsertionOrder(t *testing.T) {
	f := New()
	mustInsert(t, f, "P", "zeta")
	mustInsert(t, f, "P", "alpha")

	want := "P\n ├── zeta\n └── alpha\n"
	if got := f.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderLoneRootsAndEmpty(t *testing.T) {
	f := New()
	if got := f.Render(); got != "" {
		t.Errorf("Empty forest rendered %q", got)
	}

	mustInsert(t, f, "A", "B")
	mustInsert(t, f, "C", "B") // A is left without children

	want := "A\n\nC\n └── B\n"
	if got := f.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderDeepChain(t *testing.T) {
	f := New()
	const depth = 2000
	for i := 1; i < depth; i++ {
		mustInsert(t, f, fmt.Sprintf("n%d", i-1), fmt.Sprintf("n%d", i))
	}

	out := f.Render()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != depth {
		t.Fatalf("Expected %d lines, got %d", depth, len(lines))
	}
	last := lines[len(lines)-1]
	if !strings.HasSuffix(last, "└── n1999") {
		t.Errorf("Unexpected last line suffix: %q", last[len(last)-20:])
	}
}

func TestRenderStyled(t *testing.T) {
	f := familyForest(t)

	if got := f.RenderStyled(Style{}); got != f.Render() {
		t.Errorf("Zero style should match Render:\n%s", got)
	}

	style := Style{
		Root:   func(s string) string { return "[" + s + "]" },
		Name:   strings.ToUpper,
		Branch: func(s string) string { return strings.ReplaceAll(s, "─", "=") },
	}
	want := "[Grandpa]\n" +
		" ├== DAD\n" +
		" │   ├== YOU\n" +
		" │   └== SISTER\n" +
		" └== UNCLE\n"
	if got := f.RenderStyled(style); got != want {
		t.Errorf("RenderStyled mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func BenchmarkRender(b *testing.B) {
	f := New()
	for i := 0; i < 200; i++ {
		_ = f.Insert(fmt.Sprintf("root%d", i%10), fmt.Sprintf("kid%d", i))
		_ = f.Insert(fmt.Sprintf("kid%d", i), fmt.Sprintf("grandkid%d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Render()
	}
}
