// Package phone implements the Brazilian-style phone mask applied to the
// registration form's phone field on every keystroke:
//
//	""            -> ""
//	"1"           -> "(1)"
//	"119"         -> "(11) 9"
//	"1198765432"  -> "(11) 9876-5432"
//	"11987654321" -> "(11) 98765-4321"
//
// Masking never fails. Non-digit characters are discarded and anything past
// MaxDigits is dropped, so partial or malformed input always degrades into a
// partial mask.
package phone

import "strings"

// MaxDigits is the maximum number of digits kept by the mask (2-digit area
// code plus a 9-digit mobile number).
const MaxDigits = 11

// Block boundaries of the mask.
const (
	areaCodeLen    = 2
	shortBlockEnd  = 6  // area code + 4-digit block (landline layout)
	longBlockEnd   = 7  // area code + 5-digit block (mobile layout)
	landlineDigits = 10 // longest input that still uses the 4-digit block
)

// Digits returns the digit-only subsequence of raw, truncated to MaxDigits.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(MaxDigits)

	for i := 0; i < len(raw) && b.Len() < MaxDigits; i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Mask formats the digits found in raw for display. It is idempotent:
// Mask(Mask(x)) == Mask(x).
//
// Between 3 and 6 digits no hyphen is inserted yet; the hyphen appears once
// the seventh digit arrives.
func Mask(raw string) string {
	d := Digits(raw)

	switch n := len(d); {
	case n == 0:
		return ""
	case n <= areaCodeLen:
		return "(" + d + ")"
	case n <= shortBlockEnd:
		return "(" + d[:areaCodeLen] + ") " + d[areaCodeLen:]
	case n <= landlineDigits:
		return "(" + d[:areaCodeLen] + ") " + d[areaCodeLen:shortBlockEnd] + "-" + d[shortBlockEnd:]
	default:
		return "(" + d[:areaCodeLen] + ") " + d[areaCodeLen:longBlockEnd] + "-" + d[longBlockEnd:]
	}
}

// IsComplete reports whether masked holds a full landline (10 digits) or
// mobile (11 digits) number in masked form.
func IsComplete(masked string) bool {
	d := Digits(masked)
	if len(d) < landlineDigits {
		return false
	}
	return Mask(d) == masked
}
