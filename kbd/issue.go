package kbd

// Issue describes the kind of ambiguity resolved to literal text during scanning.
type Issue int

const (
	// IssueUnterminatedKey means the input ended while a key span was open,
	// so the opening marker and its content were kept as plain text.
	IssueUnterminatedKey Issue = iota

	// IssueDoubledMarker means four consecutive marker symbols were found
	// outside a key span and kept as plain text.
	IssueDoubledMarker

	// IssueMarkerBeforeSpace means a marker was immediately followed by
	// whitespace and therefore could not open a key span.
	IssueMarkerBeforeSpace

	// IssueTrailingEscape means the escape symbol was the last character of the input.
	IssueTrailingEscape

	// IssueRedundantEscape means the escape symbol preceded a character which
	// has no special meaning to the scanner.
	IssueRedundantEscape
)

var issueNames = [...]string{
	IssueUnterminatedKey:   "unterminated_key",
	IssueDoubledMarker:     "doubled_marker",
	IssueMarkerBeforeSpace: "marker_before_space",
	IssueTrailingEscape:    "trailing_escape",
	IssueRedundantEscape:   "redundant_escape",
}

func (i Issue) String() string {
	if i < 0 || int(i) >= len(issueNames) {
		return "unknown"
	}
	return issueNames[i]
}

// MarshalText makes the Issue readable in JSON payloads.
func (i Issue) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Warning describes a non-critical issue found while scanning.
// Scanning still succeeded and the spans are complete.
type Warning struct {
	// Issue defines the type of the problem.
	Issue Issue `json:"issue"`

	// Pos is the byte offset in the input at which the problem was detected.
	//
	// It is a byte position, not a rune index. UI code working with runes must
	// convert it first, e.g. with utf8.RuneCountInString(input[:Pos]).
	Pos int `json:"pos"`

	// Description is a human-readable explanation of what happened.
	Description string `json:"description"`
}
