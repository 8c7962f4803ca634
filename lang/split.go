package lang

import "strings"

// splitter walks an expression byte by byte, tracking whether it is inside a
// quoted region and how deeply it is nested in parentheses.
//
// Both quote characters toggle the same state, so 'a" is considered closed.
// Parentheses inside quotes are ignored and the depth may become negative.
// All delimiters are ASCII, so multi-byte runes never match them.
type splitter struct {
	input  string
	pos    int
	depth  int
	quoted bool
}

func (s *splitter) eof() bool { return s.pos >= len(s.input) }

func (s *splitter) peek() byte { return s.input[s.pos] }

// top reports whether the cursor is outside all quotes and parentheses.
func (s *splitter) top() bool { return s.depth == 0 && !s.quoted }

// advance consumes one byte and updates the quote and depth state.
func (s *splitter) advance() {
	switch s.peek() {
	case '"', '\'':
		s.quoted = !s.quoted
	case '(':
		if !s.quoted {
			s.depth++
		}
	case ')':
		if !s.quoted {
			s.depth--
		}
	}

	s.pos++
}

// split divides input at every top-level occurrence of sep and trims each
// part. Empty parts between separators are kept; a trailing part is kept only
// when at least one byte follows the last separator. found reports whether
// any separator was seen.
func split(input string, sep byte) (parts []string, found bool) {
	s := splitter{input: input}
	start := 0

	for !s.eof() {
		if s.peek() == sep && s.top() {
			parts = append(parts, strings.TrimSpace(input[start:s.pos]))
			s.pos++
			start = s.pos
			found = true

			continue
		}

		s.advance()
	}

	if start < len(input) {
		parts = append(parts, strings.TrimSpace(input[start:]))
	}

	return parts, found
}
