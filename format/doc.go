// Package format renders values through format patterns.
//
// A pattern is classified by sniffing its characters ([Infer]):
//
//   - [KindDecimal] if it contains both '.' and '0', e.g. "0.00"
//   - [KindDate] if it contains any of D, M, Y, H, m, s, e.g. "DD.MM.YYYY"
//   - [KindNone] otherwise; the value is rendered as plain text
//
// Decimal patterns fix the number of fractional digits to the count of
// characters after the last '.'. Date patterns substitute the tokens DD, MM,
// YYYY, YY, HH, mm and ss, in that order; every other character is copied
// through.
//
// Values that cannot be coerced to the inferred kind produce a
// [*ConversionError], which matches [ErrConversion] under [errors.Is].
//
//	s, err := format.Render("0.000", "3.14159") // "3.142"
//	s, err = format.Render("DD/MM/YY", "2025-10-05") // "05/10/25"
//	s, err = format.Percent("0.00%", 1.234) // "123.40%"
package format
