package access

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a read needs more bytes than remain.
	ErrOutOfRange = errors.New("bytebuffer: read out of range")
	// ErrMalformedText is returned when string bytes are not valid UTF-8.
	ErrMalformedText = errors.New("bytebuffer: malformed utf-8 text")
)

// DecodeError describes a failed read. Kind is one of the sentinels above
// and is what errors.Is matches against.
type DecodeError struct {
	Kind      error
	Op        string
	Offset    int // read offset where the failing unit starts
	Need      int // bytes the unit requires (0 when not applicable)
	Remaining int
	Preview   []byte // leading bytes of malformed text
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrMalformedText:
		return fmt.Sprintf("%s: %v at offset %d: %x", e.Op, e.Kind, e.Offset, e.Preview)
	default:
		return fmt.Sprintf("%s: %v at offset %d: need %d bytes, %d remaining",
			e.Op, e.Kind, e.Offset, e.Need, e.Remaining)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}

func outOfRange(op string, offset, need, remaining int) *DecodeError {
	return &DecodeError{
		Kind:      ErrOutOfRange,
		Op:        op,
		Offset:    offset,
		Need:      need,
		Remaining: remaining,
	}
}

func malformedText(op string, offset int, data []byte) *DecodeError {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &DecodeError{
		Kind:    ErrMalformedText,
		Op:      op,
		Offset:  offset,
		Preview: append([]byte(nil), preview...),
	}
}
