package errcode

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Busy          Code = "busy"
	InvalidParams Code = "invalid_params"
	Timeout       Code = "timeout"

	// Resource ownership.
	BusInUse Code = "bus_in_use"
	PinInUse Code = "pin_in_use"

	// Caller input, detected before any bus traffic.
	InvalidIndex      Code = "invalid_index"
	InvalidAngle      Code = "invalid_angle"
	InvalidKey        Code = "invalid_key"
	Overspeed         Code = "overspeed"
	Overintensity     Code = "overintensity"
	Overangle         Code = "overangle"
	RepeatServo       Code = "repeat_servo"
	UnconfiguredServo Code = "unconfigured_servo"

	// Bus layer.
	IOError Code = "io_error"

	Error Code = "error" // generic fallback
)

// E is an optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

type coder interface{ Code() Code }

// Of extracts a Code from an error, following the Unwrap chain.
// It defaults to Error when nothing in the chain carries a code.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	for e := err; e != nil; {
		switch x := e.(type) {
		case Code:
			return x
		case coder:
			return x.Code()
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return Error
}

// MapDriverErr maps low-level bus/driver errors to a Code. Errors that
// already carry a code keep it; anything else coming from the bus is an
// I/O failure.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	if c := Of(err); c != Error {
		return c
	}
	return IOError
}
