package description_test

import (
	"slices"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive
	"pgregory.net/rapid"

	"github.com/toejough/verify/description"
)

func TestBulletList(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name     string
		elements []string
		expected string
	}{
		{name: "single element", elements: []string{"A B C"}, expected: "* A B C"},
		{name: "two elements", elements: []string{"A B C", "D E F"}, expected: "* A B C\n* D E F"},
		{name: "single element two lines", elements: []string{"A B C\nD E F"}, expected: "* A B C\n  D E F"},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			g := NewWithT(t)
			g.Expect(description.New(test.elements...).BulletList().String()).To(Equal(test.expected))
		})
	}
}

func TestBulletList_IndentExceptFirstLine(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(description.New("A B C\nD E F").BulletList().IndentExceptFirstLine().String()).
		To(Equal("* A B C\n    D E F"))
	g.Expect(description.New("A B C", "D E F").BulletList().IndentExceptFirstLine().String()).
		To(Equal("* A B C\n  * D E F"))
}

func TestBuildersDoNotShareElements(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	base := description.New("A")
	left := base.Append("B")
	right := base.Append("C")

	g.Expect(base.String()).To(Equal("A"))
	g.Expect(left.String()).To(Equal("A\nB"))
	g.Expect(right.String()).To(Equal("A\nC"))
}

func TestConcat_KeepsReceiverStyle(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	joined := description.New("A").BulletList().Concat(description.New("B").Enumerate())

	g.Expect(joined.Len()).To(Equal(2))
	g.Expect(joined.String()).To(Equal("* A\n* B"))
}

func TestEmptyElementsRenderNothing(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(description.New().String()).To(BeEmpty())
	g.Expect(description.Description{}.Indent().BulletList().String()).To(BeEmpty())
	g.Expect(description.New("", "A").String()).To(Equal("A"))
	g.Expect(description.New("A", "", "B").Enumerate().String()).To(Equal("0. A\n2. B"))
}

func TestEnumerate(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name     string
		elements []string
		expected string
	}{
		{name: "single element", elements: []string{"A B C"}, expected: "0. A B C"},
		{name: "two elements", elements: []string{"A B C", "D E F"}, expected: "0. A B C\n1. D E F"},
		{name: "single element two lines", elements: []string{"A B C\nD E F"}, expected: "0. A B C\n   D E F"},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			g := NewWithT(t)
			g.Expect(description.New(test.elements...).Enumerate().String()).To(Equal(test.expected))
		})
	}
}

func TestEnumerate_LargeIndexAlignment(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	elements := slices.Repeat([]string{"A B C\nD E F"}, 11)

	expected := strings.Join([]string{
		" 0. A B C", "    D E F",
		" 1. A B C", "    D E F",
		" 2. A B C", "    D E F",
		" 3. A B C", "    D E F",
		" 4. A B C", "    D E F",
		" 5. A B C", "    D E F",
		" 6. A B C", "    D E F",
		" 7. A B C", "    D E F",
		" 8. A B C", "    D E F",
		" 9. A B C", "    D E F",
		"10. A B C", "    D E F",
	}, "\n")

	g.Expect(description.New(elements...).Enumerate().String()).To(Equal(expected))
}

func TestEnumerate_Indent(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(description.New("A\nB", "C").Enumerate().Indent().String()).
		To(Equal("  0. A\n     B\n  1. C"))
}

func TestFromSeq(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	d := description.FromSeq(slices.Values([]string{"A B C", "D E F"}))

	g.Expect(d.Len()).To(Equal(2))
	g.Expect(d.Elements()).To(Equal([]string{"A B C", "D E F"}))
	g.Expect(d.String()).To(Equal("A B C\nD E F"))
}

func TestIndent(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name     string
		elements []string
		expected string
	}{
		{name: "single element", elements: []string{"A B C"}, expected: "  A B C"},
		{name: "two elements", elements: []string{"A B C", "D E F"}, expected: "  A B C\n  D E F"},
		{name: "single element two lines", elements: []string{"A B C\nD E F"}, expected: "  A B C\n  D E F"},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			g := NewWithT(t)
			g.Expect(description.New(test.elements...).Indent().String()).To(Equal(test.expected))
		})
	}
}

func TestIndentExceptFirstLine(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(description.New("A B C", "D E F").IndentExceptFirstLine().String()).To(Equal("A B C\n  D E F"))
	g.Expect(description.New("A B C\nD E F").IndentExceptFirstLine().String()).To(Equal("A B C\n  D E F"))
}

func TestIsMultiline(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(description.Text("A").IsMultiline()).To(BeFalse())
	g.Expect(description.Text("A\nB").IsMultiline()).To(BeTrue())
	g.Expect(description.New("A", "B").IsMultiline()).To(BeTrue())
	g.Expect(description.New().IsEmpty()).To(BeTrue())
}

func TestLastWriteWins(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(description.New("A", "B").Enumerate().BulletList().String()).To(Equal("* A\n* B"))
	g.Expect(description.New("A", "B").IndentExceptFirstLine().Indent().String()).To(Equal("  A\n  B"))
}

func TestPlainRendering(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(description.Text("A B C").String()).To(Equal("A B C"))
	g.Expect(description.New("A B C", "D E F").String()).To(Equal("A B C\nD E F"))
	g.Expect(description.Text("A B C\r\nD E F\n").String()).To(Equal("A B C\nD E F"))
}

// TestPlainRendering_JoinsElements_Property proves that an unstyled description renders as
// its elements joined by single newlines.
func TestPlainRendering_JoinsElements_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		elements := rapid.SliceOf(element()).Draw(rt, "elements")

		rendered := description.New(elements...).String()
		expected := strings.Join(elements, "\n")

		if rendered != expected {
			rt.Fatalf("rendered %q, want %q", rendered, expected)
		}
	})
}

// TestRendering_LineStructure_Property proves that, whatever the styling, rendering keeps
// one output line per physical input line, never ends with a newline, and only ever adds
// leading indentation and markers to the original text.
func TestRendering_LineStructure_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		elements := rapid.SliceOfN(element(), 1, 15).Draw(rt, "elements")
		styled := style(rt, description.New(elements...))

		rendered := styled.String()
		if strings.HasSuffix(rendered, "\n") {
			rt.Fatalf("rendered text %q ends with a newline", rendered)
		}

		inputLines := strings.Split(strings.Join(elements, "\n"), "\n")
		outputLines := strings.Split(rendered, "\n")

		if len(outputLines) != len(inputLines) {
			rt.Fatalf("rendered %d lines from %d input lines:\n%s", len(outputLines), len(inputLines), rendered)
		}

		for i := range inputLines {
			if !strings.HasSuffix(outputLines[i], inputLines[i]) {
				rt.Fatalf("line %d %q does not end with input line %q", i, outputLines[i], inputLines[i])
			}
		}
	})
}

// TestBulletList_ContinuationAlignment_Property proves that bullet list continuation lines
// line up with the text after the marker.
func TestBulletList_ContinuationAlignment_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		elements := rapid.SliceOfN(element(), 1, 10).Draw(rt, "elements")

		rendered := description.New(elements...).BulletList().Indent().String()

		for _, line := range strings.Split(rendered, "\n") {
			if !strings.HasPrefix(line, "  * ") && !strings.HasPrefix(line, "    ") {
				rt.Fatalf("line %q is neither an indented bullet nor an aligned continuation", line)
			}
		}
	})
}

// element generates a non-empty element of one to three lines with no empty lines.
func element() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,8}(\n[A-Za-z][A-Za-z ]{0,8}){0,2}`)
}

func style(rt *rapid.T, d description.Description) description.Description {
	switch rapid.IntRange(0, 2).Draw(rt, "indent") {
	case 1:
		d = d.Indent()
	case 2:
		d = d.IndentExceptFirstLine()
	}

	switch rapid.IntRange(0, 2).Draw(rt, "list") {
	case 1:
		d = d.BulletList()
	case 2:
		d = d.Enumerate()
	}

	return d
}
