package contract

import "strconv"

// ErrorCode is the numeric failure code carried by a failed Result.
type ErrorCode uint16

const (
	ErrCodeNone         ErrorCode = 0
	ErrCodeUnauthorized ErrorCode = 403
	ErrCodeNotFound     ErrorCode = 404
)

// String prints the code the way it shows up in event logs and replay output.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeUnauthorized:
		return "403 unauthorized"
	case ErrCodeNotFound:
		return "404 not found"
	case ErrCodeNone:
		return "none"
	default:
		return strconv.FormatUint(uint64(c), 10)
	}
}

// Result is the two-variant outcome of a state-changing call: success with the newly
// assigned id, or failure with a code. Callers check Success before reading Value.
type Result struct {
	Success bool
	Value   uint64
	Error   ErrorCode
}

// Ok wraps a freshly assigned id.
func Ok(v uint64) Result {
	return Result{Success: true, Value: v}
}

// Fail builds a failed result; Value stays zero.
func Fail(code ErrorCode) Result {
	return Result{Error: code}
}

// Err maps a failure onto the sentinel errors so errors.Is works on it.
// A successful result yields nil.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	switch r.Error {
	case ErrCodeUnauthorized:
		return ErrUnauthorized
	case ErrCodeNotFound:
		return ErrNotFound
	default:
		return &CodeError{Code: r.Error}
	}
}
