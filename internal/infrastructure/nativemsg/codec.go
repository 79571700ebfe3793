// Package nativemsg implements the browser native messaging transport:
// length-prefixed JSON frames over stdin/stdout.
package nativemsg

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	// MaxReadSize caps inbound frames.
	MaxReadSize = 64 << 20
	// MaxWriteSize is the largest frame a host may send to the extension.
	MaxWriteSize = 1 << 20

	headerSize = 4
)

// ErrMessageTooLarge is returned when a frame exceeds its size cap.
var ErrMessageTooLarge = errors.New("native message exceeds size limit")

// ReadFrame reads one frame from r. It returns io.EOF when r is closed
// between frames.
func ReadFrame(r io.Reader) ([]byte, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}

	n := binary.LittleEndian.Uint32(hdr[:])
	if n > MaxReadSize {
		return nil, fmt.Errorf("failed to read frame of %d bytes: %w", n, ErrMessageTooLarge)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read frame body: %w", err)
	}
	return buf, nil
}

// WriteFrame writes payload as one frame.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxWriteSize {
		return fmt.Errorf("failed to write frame of %d bytes: %w", len(payload), ErrMessageTooLarge)
	}

	frame := make([]byte, headerSize+len(payload))
	binary.LittleEndian.PutUint32(frame, uint32(len(payload)))
	copy(frame[headerSize:], payload)

	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// WriteJSON encodes v and writes it as one frame.
func WriteJSON(w io.Writer, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	return WriteFrame(w, payload)
}
