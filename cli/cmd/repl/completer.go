package repl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/morph/lang"
	"github.com/ardnew/morph/value"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "vars", "date", "clear", "quit"}

// previewWidth is the maximum width of a value preview in the vars listing.
const previewWidth = 40

// isWordBoundary returns true if the rune delimits a word for completion
// purposes: whitespace, the path separator, the reference sigil, quotes, and
// the punctuation of calls and concatenation.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t', '$',
		'(', ')', ',', '+',
		'"', '\'':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary (after a space,
// after a dot, start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// referencePath reports whether the word starting at wordStart belongs to a
// '$' reference, and returns the dotted path leading up to it. For input
// "if($order.lines.0.sk" with the word "sk", the parent path is
// "order.lines.0". Returns "" for the first segment of a reference.
func referencePath(input string, wordStart int) (parent string, ok bool) {
	pos := wordStart

	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:pos])
		if r == '$' {
			return strings.TrimSuffix(input[pos:wordStart], "."), true
		}

		if r != '.' && isWordBoundary(r) {
			return "", false
		}

		pos -= size
	}

	return "", false
}

// childCandidates returns the names that complete a reference whose parent
// path is parent: the keys of the value found there.
func childCandidates(data any, parent string) []string {
	if parent == "" {
		return value.Of(data).Keys()
	}

	v, ok := lang.Lookup(data, parent)
	if !ok {
		return nil
	}

	return v.Keys()
}

// funcNames returns the names of the template functions.
func funcNames() []string {
	names := make([]string, 0, len(lang.Funcs()))
	for _, fn := range lang.Funcs() {
		names = append(names, fn.String())
	}

	return names
}

// computeMatches calculates the fuzzy match results for the word at the cursor.
// It returns the matches (ranked best-first), the candidate list, and the word
// boundaries. When the current word is empty outside a reference, it returns
// nil matches. Right after '$' or a dot in a reference, it returns every
// child so the user can browse.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, wordStart, wordEnd := wordBounds(input, cursor)

	browse := false

	switch parent, ref := referencePath(input, wordStart); {
	case m.mode == modeCtrl:
		if wordStart > 0 {
			return nil, nil, wordStart, wordEnd
		}

		candidates = ctrlCommands

	case ref:
		candidates = childCandidates(m.data, parent)
		browse = true

	default:
		candidates = funcNames()
	}

	if len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	if word == "" {
		if !browse {
			return nil, nil, wordStart, wordEnd
		}

		matches = make(fuzzy.Matches, len(candidates))
		for i, c := range candidates {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches, candidates, wordStart, wordEnd
	}

	return fuzzy.Find(word, candidates), candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if i > 0 && used+entryWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted. Functions are displayed with a "()" suffix.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	if sig, _ := getSignature(match.Str); sig != "" {
		b.WriteString(baseStyle.Render("()"))
	}

	return b.String()
}

// formatPreview generates a short preview of a context value.
func formatPreview(v value.Value) string {
	switch v.Kind() {
	case value.KindMap:
		return fmt.Sprintf("{ %d keys }", v.Len())

	case value.KindList:
		return fmt.Sprintf("[ %d items ]", v.Len())

	case value.KindString:
		return ellipsize(fmt.Sprintf("%q", v.Text()), previewWidth)

	default:
		return ellipsize(v.Text(), previewWidth)
	}
}

// ellipsize shortens s to at most width bytes, ending in "...".
func ellipsize(s string, width int) string {
	if len(s) <= width {
		return s
	}

	return s[:width-3] + "..."
}
