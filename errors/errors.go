package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrOptionMissing      = fmt.Errorf("option not present")
	ErrOptionUnterminated = fmt.Errorf("option value has no closing bracket")
	ErrOptionNotNumeric   = fmt.Errorf("option value is not a number")
	ErrOptionOutOfRange   = fmt.Errorf("option value out of range")
	ErrBadShipList        = fmt.Errorf("malformed ship list")
	ErrNoSession          = fmt.Errorf("no session running")
	ErrSessionRunning     = fmt.Errorf("a session is already running")
	ErrUnknownVariant     = fmt.Errorf("unknown event variant")
	ErrNoRecord           = fmt.Errorf("no record found")
)
