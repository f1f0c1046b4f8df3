package parseopts

import (
	"github.com/agilira/go-errors"
)

// Error codes carried by every error this module returns.
const (
	ErrCodeUnexpectedEOF   = "PARSEOPTS_UNEXPECTED_EOF"
	ErrCodeInvalidVersion  = "PARSEOPTS_INVALID_VERSION"
	ErrCodeAllocation      = "PARSEOPTS_ALLOCATION"
	ErrCodeTooLarge        = "PARSEOPTS_TOO_LARGE"
	ErrCodeInvalidManifest = "PARSEOPTS_INVALID_MANIFEST"
	ErrCodeIO              = "PARSEOPTS_IO"
)

var (
	ErrNilOptions = errors.New(ErrCodeAllocation, "options record is nil")
)

func errUnexpectedEOF(field string, offset, need, have int) error {
	return errors.New(ErrCodeUnexpectedEOF, "unexpected end of input reading "+field).
		WithContext("field", field).
		WithContext("offset", offset).
		WithContext("need", need).
		WithContext("have", have)
}

func errCount(what string, count int) error {
	return errors.New(ErrCodeAllocation, "cannot allocate "+what).
		WithContext("count", count)
}

// ErrorCode returns the module error code carried by err, or "" when err
// was not produced here.
func ErrorCode(err error) string {
	if coder, ok := err.(errors.ErrorCoder); ok {
		return string(coder.ErrorCode())
	}
	return ""
}
