package slcan

import "errors"

var (
	ErrIdentifierRange = errors.New("identifier out of range")
	ErrPayloadLength   = errors.New("payload length out of range")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMalformedHex    = errors.New("malformed hex digit")
	ErrInvalidLength   = errors.New("wrong line length")
	ErrBufferOverflow  = errors.New("line buffer overflow")
)
