// Package kbd recognizes "++key++" sequences inside plain inline text.
//
// A [Scanner] receives an already isolated run of inline text and splits it into
// plain text spans and key spans. Key spans are meant to be rendered as <kbd>
// elements. The scanner never fails: escaped characters, doubled markers,
// markers followed by whitespace and unterminated keys all degrade to plain text.
//
// # Rules
//
//  1. '\' makes the next character literal, inside and outside of a key.
//     A '\' at the very end of the input is kept as is.
//  2. "++++" outside of a key is plain text.
//  3. "++" followed by whitespace does not open a key.
//  4. Any "++" inside of a key closes it. Keys never nest.
//  5. A key left open at the end of the input turns back into plain text,
//     merged with the plain text right before it.
//
// The scanner keeps no state between calls and is safe for concurrent use.
package kbd
