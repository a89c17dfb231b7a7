package contract

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// CodeError reports a failure code that has no sentinel.
type CodeError struct {
	Code ErrorCode
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("contract call failed with code %d", e.Code)
}
