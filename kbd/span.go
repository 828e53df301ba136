package kbd

import "strings"

// Kind defines the variant of a [Span].
type Kind int

const (
	// KindText means the [Span] holds literal content.
	KindText Kind = iota

	// KindKey means the [Span] holds the content found between a matched
	// opening and closing [Marker].
	KindKey
)

const (
	// Marker is the two-byte delimiter which opens and closes a key span.
	Marker = "++"

	// SymbolMarker is the single byte the [Marker] is made of.
	SymbolMarker byte = '+'

	// SymbolEscape forces the next character to be treated as literal content.
	SymbolEscape byte = '\\'

	// RenderHint is the tag name a markup projector should use for key spans.
	RenderHint = "kbd"
)

// Span is the unit of the scanner's output.
//
// For [KindText] Value is the literal text. For [KindKey] Value is the content
// that appeared between the markers, without the markers themselves.
type Span struct {
	Kind  Kind
	Value string
}

// Text creates a plain text Span.
func Text(value string) Span {
	return Span{Kind: KindText, Value: value}
}

// Key creates a key Span with the provided content.
func Key(content string) Span {
	return Span{Kind: KindKey, Value: content}
}

// IsKey reports whether the Span is a key span.
func (s Span) IsKey() bool {
	return s.Kind == KindKey
}

// Surface returns the literal surface form of the Span: the value itself for
// plain text, and marker + content + marker for key spans.
//
// Escape symbols consumed by the scanner are never re-inserted.
func (s Span) Surface() string {
	if s.Kind == KindKey {
		return Marker + s.Value + Marker
	}
	return s.Value
}

// Join concatenates the surface forms of all spans.
func Join(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Surface())
	}
	return b.String()
}
