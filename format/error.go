package format

import (
	"errors"
	"log/slog"

	"github.com/ardnew/morph/value"
)

// ErrConversion matches every [*ConversionError] under [errors.Is].
var ErrConversion = errors.New("conversion error")

// ConversionError reports a value that cannot be coerced to the kind a
// pattern requires.
type ConversionError struct {
	Value value.Value
	// Target is "number" or "date".
	Target string
}

func convError(v value.Value, target string) *ConversionError {
	return &ConversionError{Value: v, Target: target}
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return "cannot convert '" + e.Value.Text() + "' to " + e.Target
}

// Unwrap returns [ErrConversion].
func (e *ConversionError) Unwrap() error { return ErrConversion }

// LogValue implements [slog.LogValuer].
func (e *ConversionError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrConversion.Error()),
		slog.String("target", e.Target),
		slog.Any("value", e.Value),
	)
}
