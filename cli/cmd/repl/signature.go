package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/morph/lang"
)

// signatureHintStyle styles for parameter hints.
var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
	signatureSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// functionCall represents a detected function call in the input.
type functionCall struct {
	name     string // function name (e.g., "format")
	argIndex int    // current argument index (0-based)
	inCall   bool   // true if cursor is inside parameter list
}

// detectFunctionCall reports whether the cursor is inside the argument list of
// a function call, and if so which function and which argument. Parentheses
// and commas inside quotes are ignored, with the same toggling quote rule the
// evaluator uses.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(max(cursor, 0), len(input))

	// Forward scan up to the cursor, tracking the start of each open call and
	// the argument index within it.
	type frame struct{ open, args int }

	var (
		stack  []frame
		quoted bool
	)

	for i := 0; i < cursor; i++ {
		switch input[i] {
		case '"', '\'':
			quoted = !quoted

		case '(':
			if !quoted {
				stack = append(stack, frame{open: i})
			}

		case ')':
			if !quoted && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case ',':
			if !quoted && len(stack) > 0 {
				stack[len(stack)-1].args++
			}
		}
	}

	if len(stack) == 0 {
		return functionCall{}
	}

	top := stack[len(stack)-1]

	// Extract the identifier before the '('.
	nameStart := top.open

	for nameStart > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:nameStart])
		if r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			break
		}

		nameStart -= size
	}

	name := input[nameStart:top.open]
	if name == "" {
		return functionCall{}
	}

	return functionCall{name: name, argIndex: top.args, inCall: true}
}

// getSignature returns the signature and parameter names of the named
// function, or "" if there is no such function.
func getSignature(name string) (signature string, params []string) {
	for _, fn := range lang.Funcs() {
		if fn.String() != name {
			continue
		}

		signature = fn.Signature()

		inner := strings.TrimSuffix(strings.TrimPrefix(signature, name+"("), ")")

		return signature, strings.Split(inner, ", ")
	}

	return "", nil
}

// renderSignatureHint renders the function signature with the current
// parameter highlighted.
func renderSignatureHint(
	signature string,
	params []string,
	currentArgIdx int,
) string {
	if signature == "" {
		return ""
	}

	openParen := strings.Index(signature, "(")
	if openParen == -1 {
		return signatureStyle.Render(signature)
	}

	funcName := signature[:openParen]

	if len(params) == 0 {
		return signatureNameStyle.Render(funcName) +
			signatureStyle.Render("()")
	}

	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(funcName))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureSeparatorStyle.Render(", "))
		}

		if currentArgIdx == i {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	if currentArgIdx >= len(params) {
		b.WriteString(errorStyle.Render("  too many arguments"))
	}

	return b.String()
}
