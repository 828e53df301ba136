package kbd

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options is the configuration value accepted by [New].
//
// No options are defined at the moment. Every key is accepted and ignored,
// so callers may pass configuration written for newer versions.
type Options map[string]any

// Result is the output of a single scan.
type Result struct {
	// Spans is the ordered sequence of plain text and key spans.
	Spans []Span `json:"spans"`

	// Warnings lists the ambiguities that were resolved to literal text.
	Warnings []Warning `json:"warnings"`

	// Ranges holds the input byte range of every span, in the same order.
	// A key range includes both markers. Segmenters may leave it empty.
	Ranges []Range `json:"-"`
}

// Range is a half-open byte range [Start, Stop) of the scanned input.
type Range struct {
	Start int
	Stop  int
}

// Inner returns the range of a key span's content, without the markers.
func (r Range) Inner() Range {
	return Range{Start: r.Start + len(Marker), Stop: r.Stop - len(Marker)}
}

// Unchanged reports whether the Result describes no structural change of the
// input, i.e. the host does not need to replace the scanned leaf.
func (r Result) Unchanged(input string) bool {
	switch len(r.Spans) {
	case 0:
		return input == ""
	case 1:
		return r.Spans[0].Kind == KindText && r.Spans[0].Value == input
	}
	return false
}

// Keys returns the number of key spans in the Result.
func (r Result) Keys() int {
	n := 0
	for _, s := range r.Spans {
		if s.Kind == KindKey {
			n++
		}
	}
	return n
}

// Segmenter splits a run of inline text into spans.
//
// Implementations must be safe for concurrent use and must not keep any state
// between calls.
type Segmenter interface {
	Scan(input string) Result
}

// Scanner recognizes marker-delimited key spans inside plain inline text.
// The zero value is ready to use.
type Scanner struct{}

// New creates a Scanner. The options are currently a no-op.
func New(_ Options) *Scanner {
	return &Scanner{}
}

// Default is the Scanner used by [Scan].
var Default = New(nil)

// Scan splits the input into spans using the [Default] Scanner.
func Scan(input string) []Span {
	return Default.Scan(input).Spans
}

// Scan splits the input into plain text and key spans in a single left-to-right pass.
//
// Scan never fails. Malformed or ambiguous sequences degrade to plain text and
// are reported as Warnings. An input without the marker symbol is returned as
// a single plain text span, and an empty input yields no spans.
func (sc *Scanner) Scan(input string) Result {
	if input == "" {
		return Result{}
	}

	if strings.IndexByte(input, SymbolMarker) < 0 {
		return Result{
			Spans:  []Span{Text(input)},
			Ranges: []Range{{Start: 0, Stop: len(input)}},
		}
	}

	var s scanState

	n := len(input)

	for i := 0; i < n; {
		b := input[i]

		// 1. escape sequence, same in both modes
		if b == SymbolEscape {
			i += s.escape(input, i)
			continue
		}

		// 2. marker
		if isMarkerAt(input, i) {
			if s.mode == modeInsideKey {
				s.closeKey(i)
				i += len(Marker)
			} else {
				i += s.markerOutside(input, i)
			}
			continue
		}

		// 3. plain byte; multi-byte runes never contain the special symbols,
		// so copying them byte by byte is safe
		s.buf.WriteByte(b)
		i++
	}

	s.finish(n)

	return Result{Spans: s.spans, Warnings: s.warns, Ranges: s.ranges}
}

// mode is the state of the scanning loop.
type mode uint8

const (
	modeOutside mode = iota
	modeInsideKey
)

// scanState holds all mutable state of a single Scan call.
type scanState struct {
	mode mode

	// buf accumulates either plain text or key content, depending on mode.
	buf strings.Builder

	// marker is the opening marker text while mode is modeInsideKey.
	// It is needed only to rebuild the literal text of an unterminated key span.
	marker string

	// openPos is the byte index of the opening marker.
	openPos int

	// runStart is the byte index where the current plain text run began.
	runStart int

	spans  []Span
	ranges []Range
	warns  []Warning
}

// escape writes the character following the escape symbol at index i into the
// active buffer and returns the number of processed bytes.
func (s *scanState) escape(input string, i int) int {
	// lone escape symbol at the very end has nothing to escape
	if i+1 == len(input) {
		s.buf.WriteByte(SymbolEscape)
		s.warn(IssueTrailingEscape, i,
			"Escape symbol '"+string(SymbolEscape)+"' at the end of the input is kept as plain text.")
		return 1
	}

	width := 1
	next := input[i+1]
	if next >= utf8.RuneSelf {
		_, width = utf8.DecodeRuneInString(input[i+1:])
	}

	escaped := input[i+1 : i+1+width]
	s.buf.WriteString(escaped)

	if next != SymbolMarker && next != SymbolEscape {
		s.warn(IssueRedundantEscape, i+1,
			"Redundant escape before the character '"+escaped+"' at byte index "+strconv.Itoa(i+1)+".")
	}

	return 1 + width
}

// markerOutside decides what the marker at index i means while no key span is
// open and returns the number of processed bytes.
func (s *scanState) markerOutside(input string, i int) int {
	after := i + len(Marker)

	// "++++" would otherwise read as an empty key span
	if isMarkerAt(input, after) {
		s.buf.WriteString(input[i : after+len(Marker)])
		s.warn(IssueDoubledMarker, i,
			"Doubled marker '"+Marker+Marker+"' at byte index "+strconv.Itoa(i)+" is kept as plain text.")
		return 2 * len(Marker)
	}

	// the second symbol is examined again on the next iteration
	if isSpaceAt(input, after) {
		s.buf.WriteByte(SymbolMarker)
		s.warn(IssueMarkerBeforeSpace, i,
			"Marker '"+Marker+"' at byte index "+strconv.Itoa(i)+" is followed by whitespace and cannot open a key.")
		return 1
	}

	s.openKey(input[i:after], i)
	return len(Marker)
}

func (s *scanState) flushText(stop int) {
	if s.buf.Len() > 0 {
		s.spans = append(s.spans, Text(s.buf.String()))
		s.ranges = append(s.ranges, Range{Start: s.runStart, Stop: stop})
		s.buf.Reset()
	}
}

func (s *scanState) openKey(marker string, pos int) {
	s.flushText(pos)
	s.mode = modeInsideKey
	s.marker = marker
	s.openPos = pos
}

// closeKey emits the open key span, pos is the byte index of the closing marker.
func (s *scanState) closeKey(pos int) {
	s.spans = append(s.spans, Key(s.buf.String()))
	s.ranges = append(s.ranges, Range{Start: s.openPos, Stop: pos + len(Marker)})
	s.runStart = pos + len(Marker)
	s.buf.Reset()
	s.mode = modeOutside
	s.marker = ""
}

// finish flushes the remaining buffer. An unterminated key span turns back into
// plain text and is merged with the preceding plain text span, if any.
func (s *scanState) finish(n int) {
	if s.mode == modeOutside {
		s.flushText(n)
		return
	}

	rest := s.marker + s.buf.String()
	s.buf.Reset()
	s.mode = modeOutside

	s.warn(IssueUnterminatedKey, s.openPos,
		"Key opened at byte index "+strconv.Itoa(s.openPos)+" is never closed and is kept as plain text.")

	if last := len(s.spans) - 1; last >= 0 && s.spans[last].Kind == KindText {
		s.spans[last].Value += rest
		s.ranges[last].Stop = n
		return
	}

	s.spans = append(s.spans, Text(rest))
	s.ranges = append(s.ranges, Range{Start: s.openPos, Stop: n})
}

func (s *scanState) warn(issue Issue, pos int, desc string) {
	s.warns = append(s.warns, Warning{
		Issue:       issue,
		Pos:         pos,
		Description: desc,
	})
}

// isMarkerAt reports whether the input contains the Marker at index i.
func isMarkerAt(input string, i int) bool {
	return i+1 < len(input) && input[i] == SymbolMarker && input[i+1] == SymbolMarker
}

// isSpaceAt reports whether the character starting at index i is whitespace.
// The end of the input is not whitespace.
func isSpaceAt(input string, i int) bool {
	if i >= len(input) {
		return false
	}

	b := input[i]
	if b < utf8.RuneSelf {
		return unicode.IsSpace(rune(b))
	}

	r, _ := utf8.DecodeRuneInString(input[i:])
	return unicode.IsSpace(r)
}
