package jos

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. A failed decode always wraps exactly one of these,
// so callers can classify failures with errors.Is regardless of the
// contextual detail carried in a *DecodeError.
var (
	ErrPrematureEndOfInput       = errors.New("jos: premature end of input")
	ErrBadMagic                  = errors.New("jos: bad stream magic")
	ErrUnsupportedVersion        = errors.New("jos: unsupported stream version")
	ErrUnknownTypeCode           = errors.New("jos: unknown content type code")
	ErrDisallowedContent         = errors.New("jos: content kind not allowed here")
	ErrUnsupported               = errors.New("jos: unsupported content kind")
	ErrExternalizableUnsupported = errors.New("jos: externalizable legacy layout unsupported")
	ErrUnknownClassFlags         = errors.New("jos: unknown class descriptor flags")
	ErrUnknownFieldType          = errors.New("jos: unknown field type code")
	ErrLongStringOverflow        = errors.New("jos: long string length overflow")
	ErrInvalidHandle             = errors.New("jos: invalid handle reference")
	ErrNegativeArrayLength       = errors.New("jos: negative array length")
)

// DecodeError is the structured failure surface for every parse error: the
// sentinel it wraps, the byte offset where the failure was detected, and a
// reference to the buffer being parsed so callers can build their own
// diagnostics (a hex dump around Pos, for instance).
type DecodeError struct {
	Err    error
	Pos    int
	Buf    []byte
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (at offset %d)", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v (at offset %d): %s", e.Err, e.Pos, e.Detail)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newError(kind error, pos int, buf []byte, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Err: kind, Pos: pos, Buf: buf, Detail: fmt.Sprintf(format, args...)}
}
