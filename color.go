package tmx

import "strconv"

// Color is a packed ARGB color. Six-digit source strings get full
// opacity.
type Color struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

// ParseColor parses a hexadecimal color string of 6 (RGB) or 8 (ARGB)
// digits, optionally prefixed with '#'.
func ParseColor(raw string) (Color, error) {
	digits := raw
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}

	switch len(digits) {
	case 6:
		digits = "ff" + digits
	case 8:
	default:
		return Color{}, &InvalidColorError{Raw: raw}
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, &InvalidColorError{ParseError{Cause: err}, raw}
	}

	return Color{
		A: uint8(n >> 24),
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
	}, nil
}
