package wukong

import (
	"errors"

	"wukong-go/errcode"
	"wukong-go/x/conv"
)

// Errors returned by the driver. Validation failures are wrapped in *Error
// so the rejected value travels with them; match with errors.Is.
var (
	ErrInvalidIndex      = errors.New("wukong: invalid index")
	ErrInvalidAngle      = errors.New("wukong: invalid angle")
	ErrOverspeed         = errors.New("wukong: speed out of range")
	ErrOverintensity     = errors.New("wukong: intensity out of range")
	ErrRepeatServo       = errors.New("wukong: servo configured twice")
	ErrUnconfiguredServo = errors.New("wukong: servo not configured")
	ErrOverangle         = errors.New("wukong: angle beyond servo maximum")
	ErrInvalidMode       = errors.New("wukong: invalid mood light mode")
)

// Error is a validation failure. No bus traffic happens once one is raised.
type Error struct {
	Err   error // one of the sentinels above
	Value int   // the rejected raw value (servo/motor number, angle, speed...)
	Limit int   // configured maximum, for ErrOverangle; 0 otherwise
}

func (e *Error) Error() string {
	b := append([]byte(e.Err.Error()), ": "...)
	b = conv.AppendInt(b, int64(e.Value))
	if e.Limit != 0 {
		b = append(b, " > "...)
		b = conv.AppendInt(b, int64(e.Limit))
	}
	return string(b)
}

func (e *Error) Unwrap() error { return e.Err }

// Code reports the stable error code for e.
func (e *Error) Code() errcode.Code {
	switch e.Err {
	case ErrInvalidIndex:
		return errcode.InvalidIndex
	case ErrInvalidAngle:
		return errcode.InvalidAngle
	case ErrOverspeed:
		return errcode.Overspeed
	case ErrOverintensity:
		return errcode.Overintensity
	case ErrRepeatServo:
		return errcode.RepeatServo
	case ErrUnconfiguredServo:
		return errcode.UnconfiguredServo
	case ErrOverangle:
		return errcode.Overangle
	case ErrInvalidMode:
		return errcode.InvalidParams
	}
	return errcode.Error
}

func invalid(err error, value int) error { return &Error{Err: err, Value: value} }

// PhaseError reports a bus failure part way through a two-write mood light
// sequence. Phase 1 means nothing was changed; phase 2 means the first write
// has already taken effect. Unwrap yields the bus error unchanged.
type PhaseError struct {
	Phase int
	Err   error
}

func (e *PhaseError) Error() string {
	b := append([]byte("wukong: mood lights write "), byte('0'+e.Phase))
	return string(b) + ": " + e.Err.Error()
}

func (e *PhaseError) Unwrap() error { return e.Err }

// Code reports io_error; the cause is always the bus.
func (e *PhaseError) Code() errcode.Code { return errcode.MapDriverErr(e.Err) }
