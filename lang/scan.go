package lang

import (
	"iter"
	"strings"
)

// Placeholder delimiters.
const (
	Open  = "{{"
	Close = "}}"
)

// Placeholder is one recognized {{ ... }} occurrence in a template.
type Placeholder struct {
	// Expr is the enclosed text with surrounding whitespace removed.
	Expr string
	// Start is the byte offset of the opening delimiter.
	Start int
	// End is the byte offset just past the closing delimiter.
	End int
}

// Placeholders yields the placeholders of template from left to right.
//
// Each placeholder ends at the first closing delimiter after its opening
// delimiter. Occurrences do not overlap. When the enclosed text would contain
// a line break the opening delimiter is skipped and scanning resumes one byte
// later.
func Placeholders(template string) iter.Seq[Placeholder] {
	return func(yield func(Placeholder) bool) {
		s := scanner{input: template}

		for {
			p, ok := s.next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) next() (Placeholder, bool) {
	for s.pos < len(s.input) {
		start := strings.Index(s.input[s.pos:], Open)
		if start < 0 {
			break
		}

		start += s.pos
		body := start + len(Open)

		end := strings.Index(s.input[body:], Close)
		if end < 0 {
			break
		}

		end += body

		if strings.IndexByte(s.input[body:end], '\n') >= 0 {
			s.pos = start + 1

			continue
		}

		s.pos = end + len(Close)

		return Placeholder{
			Expr:  strings.TrimSpace(s.input[body:end]),
			Start: start,
			End:   s.pos,
		}, true
	}

	s.pos = len(s.input)

	return Placeholder{}, false
}
