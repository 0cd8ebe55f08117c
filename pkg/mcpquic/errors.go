package mcpquic

import (
	"errors"
	"fmt"

	"github.com/quic-go/quic-go"
)

// Stream error codes.
const (
	StreamErrorNoError         quic.StreamErrorCode = 0x00
	StreamErrorBadMagic        quic.StreamErrorCode = 0x02
	StreamErrorMessageTooLarge quic.StreamErrorCode = 0x03
)

// Connection error codes.
const (
	ConnErrorNoError           quic.ApplicationErrorCode = 0x00
	ConnErrorUnsupportedALPN   quic.ApplicationErrorCode = 0x01
	ConnErrorProtocolViolation quic.ApplicationErrorCode = 0x03
	ConnErrorMCPDisabled       quic.ApplicationErrorCode = 0x10
)

var (
	ErrBadMagic        = errors.New("mcpquic: bad magic bytes, want " + Magic)
	ErrUnsupportedALPN = errors.New("mcpquic: peer did not negotiate " + ALPN)
	ErrNotConnected    = errors.New("mcpquic: client not connected")
)

// ConnectionError reports why a connection was refused.
type ConnectionError struct {
	Remote string
	Code   quic.ApplicationErrorCode
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("mcpquic: connection %s refused (code 0x%02x): %v", e.Remote, e.Code, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
