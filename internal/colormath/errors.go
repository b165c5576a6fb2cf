package colormath

import "fmt"

// InvalidChannelError reports a channel or alpha value outside its
// representable range.
type InvalidChannelError struct {
	Channel string
	Value   float64
}

func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("invalid %s channel value %g", e.Channel, e.Value)
}

// ZeroAlphaError reports a division by a vanishing alpha. A fully
// transparent color has no opaque equivalent, and an opaque addition
// cannot be scraped off the color it covers.
type ZeroAlphaError struct {
	Op    string
	Alpha float64
}

func (e *ZeroAlphaError) Error() string {
	return fmt.Sprintf("%s: alpha %g leaves nothing to divide by", e.Op, e.Alpha)
}

// InvalidGammaError reports a gamma that is not a positive finite number.
type InvalidGammaError struct {
	Gamma float64
}

func (e *InvalidGammaError) Error() string {
	return fmt.Sprintf("invalid gamma %g: must be positive", e.Gamma)
}

// ParseError reports a color name that could not be resolved.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown color %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("unknown color %q", e.Name)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
