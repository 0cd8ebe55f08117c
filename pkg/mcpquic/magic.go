package mcpquic

import (
	"fmt"
	"io"
)

// ReadMagic consumes the stream preamble and checks it is Magic.
func ReadMagic(r io.Reader) error {
	var buf [len(Magic)]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fmt.Errorf("read magic: %w", err)
	}
	if string(buf[:]) != Magic {
		return fmt.Errorf("%w: got %q", ErrBadMagic, buf[:])
	}
	return nil
}

// WriteMagic writes the stream preamble. Clients call it right after opening
// the stream.
func WriteMagic(w io.Writer) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	return nil
}
