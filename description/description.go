// Package description renders the text matchers produce for Describe and ExplainMatch.
//
// A Description is an ordered list of (possibly multi-line) elements. Indentation and list
// styling are recorded by the builder methods and only applied when the Description is
// rendered with String, so composed matchers can nest descriptions without committing to an
// indentation level until the outermost caller prints the result:
//
//	description.New("A B C\nD E F").BulletList().String() // "* A B C\n  D E F"
package description

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Description is a lazily rendered list of text elements.
// The zero value is an empty description that renders to "".
type Description struct {
	elements   []string
	indentMode indentMode
	listStyle  listStyle
}

// FromSeq collects the strings yielded by seq into a Description, in order.
func FromSeq(seq iter.Seq[string]) Description {
	return Description{elements: slices.Collect(seq)}
}

// New returns a Description holding the given elements, in order.
func New(elements ...string) Description {
	return Description{elements: slices.Clone(elements)}
}

// Text returns a Description holding a single element.
func Text(text string) Description {
	return Description{elements: []string{text}}
}

// Append returns a copy of d with the given elements added after its existing ones.
func (d Description) Append(elements ...string) Description {
	d.elements = slices.Concat(d.elements, elements)

	return d
}

// BulletList marks each element with "* " when rendered. Continuation lines of an element
// are aligned under the element's text, not under the marker.
func (d Description) BulletList() Description {
	d.listStyle = bulletList

	return d
}

// Concat returns a copy of d followed by other's elements. Only d's styling is kept; to keep
// other's styling, append its rendered String instead.
func (d Description) Concat(other Description) Description {
	return d.Append(other.elements...)
}

// Elements returns a copy of the unrendered elements.
func (d Description) Elements() []string {
	return slices.Clone(d.elements)
}

// Enumerate marks each element with its zero-based index when rendered. Indices are
// right-aligned to the width of the largest one.
func (d Description) Enumerate() Description {
	d.listStyle = enumerateList

	return d
}

// Indent indents every rendered line.
func (d Description) Indent() Description {
	d.indentMode = everyLine

	return d
}

// IndentExceptFirstLine indents every rendered line but the very first one, for text whose
// first line is already positioned by the caller.
func (d Description) IndentExceptFirstLine() Description {
	d.indentMode = allExceptFirstLine

	return d
}

// IsEmpty reports whether d has no elements.
func (d Description) IsEmpty() bool {
	return len(d.elements) == 0
}

// IsMultiline reports whether d renders to more than one line.
func (d Description) IsMultiline() bool {
	return strings.Contains(d.String(), "\n")
}

// Len returns the number of elements.
func (d Description) Len() int {
	return len(d.elements)
}

// String renders d. Elements are separated by a single newline and no newline follows the
// last line.
func (d Description) String() string {
	sizes := d.indentationSizes()
	firstLineIndent := sizes.firstLineIndent

	var builder strings.Builder

	first := true

	for idx, element := range d.elements {
		elementLines := lines(element)

		if len(elementLines) > 0 {
			if !first {
				builder.WriteByte('\n')
			}

			first = false

			builder.WriteString(spaces(firstLineIndent))
			builder.WriteString(d.marker(idx, sizes.enumerationPadding))
			builder.WriteString(elementLines[0])

			for _, line := range elementLines[1:] {
				builder.WriteByte('\n')
				builder.WriteString(spaces(sizes.otherLineIndent))
				builder.WriteString(line)
			}
		}

		firstLineIndent = sizes.firstLineOfElementIndent
	}

	return builder.String()
}

// indentationSize is the number of spaces used when no alignment is required.
const indentationSize = 2

// unexported constants.
const (
	noIndent indentMode = iota
	everyLine
	allExceptFirstLine
)

const (
	noList listStyle = iota
	bulletList
	enumerateList
)

const (
	bulletMarker    = "* "
	enumerateSuffix = ". "
)

type indentMode int

type indentationSizes struct {
	firstLineIndent          int
	firstLineOfElementIndent int
	enumerationPadding       int
	otherLineIndent          int
}

type listStyle int

func (d Description) indentationSizes() indentationSizes {
	sizes := indentationSizes{enumerationPadding: 1}

	if d.indentMode == everyLine {
		sizes.firstLineIndent = indentationSize
	}

	if d.indentMode != noIndent {
		sizes.firstLineOfElementIndent = indentationSize
	}

	// a list of 13 elements ends at index 12, which needs two digits
	if len(d.elements) > 1 {
		sizes.enumerationPadding = len(strconv.Itoa(len(d.elements) - 1))
	}

	sizes.otherLineIndent = sizes.firstLineOfElementIndent

	switch d.listStyle {
	case bulletList:
		sizes.otherLineIndent += len(bulletMarker)
	case enumerateList:
		sizes.otherLineIndent += sizes.enumerationPadding + len(enumerateSuffix)
	case noList:
	}

	return sizes
}

func (d Description) marker(idx, padding int) string {
	switch d.listStyle {
	case bulletList:
		return bulletMarker
	case enumerateList:
		index := strconv.Itoa(idx)

		return spaces(padding-len(index)) + index + enumerateSuffix
	case noList:
	}

	return ""
}

// lines splits text into physical lines. A trailing newline does not start a new line, a
// trailing carriage return is dropped from each line, and empty text has no lines.
func lines(text string) []string {
	if text == "" {
		return nil
	}

	split := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range split {
		split[i] = strings.TrimSuffix(line, "\r")
	}

	return split
}

func spaces(count int) string {
	if count <= 0 {
		return ""
	}

	return strings.Repeat(" ", count)
}
