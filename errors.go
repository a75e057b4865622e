package tmx

import "fmt"

// ParseError is the base error type for all tmx errors.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string { return e.Message }

func (e *ParseError) Unwrap() error { return e.Cause }

// BadXmlError reports a structural failure: the expected root element is
// missing or misnamed, or the event stream is unparsable where an
// element was expected.
type BadXmlError struct{ ParseError }

func (e *BadXmlError) Error() string {
	if e.Message != "" {
		return "bad xml: " + e.Message
	}
	return "bad xml"
}

// UnknownAttributeError reports an attribute name that is not part of the
// current element's schema.
type UnknownAttributeError struct {
	ParseError
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q", e.Name)
}

// InvalidNumberError reports a numeric attribute value that could not be
// converted to its target type.
type InvalidNumberError struct {
	ParseError
	Raw string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Raw)
}

// InvalidColorError reports a color value that is not a 6- or 8-digit
// hexadecimal string.
type InvalidColorError struct {
	ParseError
	Raw string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Raw)
}

// InvalidPointError reports a comma-separated tuple with the wrong number
// of components.
type InvalidPointError struct {
	ParseError
	Raw string
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("invalid point %q", e.Raw)
}

// BadOrientationError reports an orientation value outside the closed
// vocabulary (orthogonal, isometric, staggered, hexagonal).
type BadOrientationError struct {
	ParseError
	Raw string
}

func (e *BadOrientationError) Error() string {
	return fmt.Sprintf("bad orientation %q", e.Raw)
}

// BadRenderOrderError reports a renderorder value outside the closed
// vocabulary (right-down, right-up, left-down, left-up).
type BadRenderOrderError struct {
	ParseError
	Raw string
}

func (e *BadRenderOrderError) Error() string {
	return fmt.Sprintf("bad render order %q", e.Raw)
}

// BadAxisError reports a staggeraxis value outside the closed vocabulary
// (x, y).
type BadAxisError struct {
	ParseError
	Raw string
}

func (e *BadAxisError) Error() string {
	return fmt.Sprintf("bad stagger axis %q", e.Raw)
}

// BadIndexError reports a staggerindex value outside the closed
// vocabulary (even, odd).
type BadIndexError struct {
	ParseError
	Raw string
}

func (e *BadIndexError) Error() string {
	return fmt.Sprintf("bad stagger index %q", e.Raw)
}
