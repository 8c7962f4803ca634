// Package lang renders morph templates.
//
// A template is plain text with embedded placeholders. Each placeholder is
// delimited by double braces and contains a single expression:
//
//	Hello {{ $customer.name }}, your total is {{ format($total, '0.00') }}.
//
// Text outside placeholders is copied through unchanged. A placeholder whose
// enclosed text spans a line break is not recognized and stays verbatim.
//
// # Expressions
//
// Expressions are evaluated by ordered classification. The first rule that
// applies wins:
//
//  1. Function call: the expression starts with if( or format(, ends with ')'
//     and the opening parenthesis does not close before that final ')'.
//  2. Concatenation: the expression contains a '+' outside quotes and
//     parentheses. Each term is evaluated and the textual forms are joined.
//  3. Literal: the expression is wrapped in matching single or double quotes.
//  4. Reference: the expression starts with '$' and names a dotted path into
//     the data context.
//  5. Anything else evaluates to its own trimmed text.
//
// # Functions
//
//	if(cond, then, else)   evaluates then when cond is truthy, else otherwise
//	format(value, pattern) renders value with a quoted pattern
//
// Patterns containing both '.' and '0' are decimal patterns; the number of
// characters after the last '.' is the fractional digit count. Patterns with
// any of D, M, Y, H, m or s are date patterns using the tokens DD, MM, YYYY,
// YY, HH, mm and ss. See package [github.com/ardnew/morph/format].
//
// # Resolution
//
// A reference such as $order.items.0.price walks the data one segment at a
// time: map keys first, then all-digit list indices, then exported struct
// fields and zero-argument methods. A segment that cannot be followed yields
// the empty string. Resolution never fails.
//
// # Errors
//
// Rendering never fails as a whole. A placeholder whose evaluation fails is
// replaced with {{ERROR: <message>}} and rendering continues with the next
// placeholder. Formatting failures inside format() are softer still: they
// render as value|<message> in place of the formatted value.
package lang
