package stomata

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatFloat formats f with exactly precision decimals and thousand
// separators in the integer part. Infinities and NaN render as "inf",
// "-inf" and "nan".
// Example: FormatFloat(360558, 4) returns "360,558.0000".
func FormatFloat(f float64, precision int) string {
	if s, ok := formatNonFinite(f); ok {
		return s
	}
	return printer.Sprintf("%.*f", precision, f)
}
