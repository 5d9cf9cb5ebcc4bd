package argspec

import (
	"errors"
	"strconv"
	"strings"
)

// Scalar token grammar. All three typed parsers demand full-token
// consumption and reject the silently tolerant leading whitespace baked into
// general-purpose numeric parsers. Underscore digit separators are Go
// literal syntax, not command-line syntax, and are rejected outright.

var errBadScalar = errors.New("invalid scalar token")

// parseBoolToken accepts exactly the eight literal spellings. There is no
// general case-insensitive matching: "TRUE" is valid, "True" is valid,
// "tRue" is not.
func parseBoolToken(tok string) (value, ok bool) {
	switch tok {
	case "1", "true", "True", "TRUE":
		return true, true
	case "0", "false", "False", "FALSE":
		return false, true
	}
	return false, false
}

// parseIntToken parses a signed 64-bit integer with base autodetection: a
// 0x prefix selects hex and a leading 0 selects octal. The magnitude must
// fit int64 exactly; out-of-range input is an error, not a saturation.
func parseIntToken(tok string) (int64, error) {
	if tok == "" || leadingSpace(tok) || strings.IndexByte(tok, '_') >= 0 {
		return 0, errBadScalar
	}
	v, err := strconv.ParseInt(tok, 0, 64)
	if err != nil {
		return 0, errBadScalar
	}
	return v, nil
}

// parseDoubleToken parses a float64 under the standard floating grammar,
// including infinity and NaN spellings. A range error from the underlying
// conversion rejects the token rather than producing a clamped value.
func parseDoubleToken(tok string) (float64, error) {
	if tok == "" || leadingSpace(tok) || strings.IndexByte(tok, '_') >= 0 {
		return 0, errBadScalar
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errBadScalar
	}
	return v, nil
}

func leadingSpace(tok string) bool {
	switch tok[0] {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
