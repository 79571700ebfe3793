package nativemsg

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFrame_LittleEndianHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, []byte(`{"a":1}`)))

	raw := buf.Bytes()
	require.Len(t, raw, 4+7)
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(raw[:4]))
	assert.Equal(t, `{"a":1}`, string(raw[4:]))
}

func TestReadFrame_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]string{"type": "ping"}))
	require.NoError(t, WriteJSON(&buf, map[string]string{"type": "reset"}))

	first, err := ReadFrame(&buf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ping"}`, string(first))

	second, err := ReadFrame(&buf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"reset"}`, string(second))

	_, err = ReadFrame(&buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriteFrame_TooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFrame(&buf, []byte(strings.Repeat("x", MaxWriteSize+1)))
	assert.ErrorIs(t, err, ErrMessageTooLarge)
	assert.Zero(t, buf.Len())
}

func TestReadFrame_TooLarge(t *testing.T) {
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], MaxReadSize+1)

	_, err := ReadFrame(bytes.NewReader(hdr[:]))
	assert.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestReadFrame_TruncatedBody(t *testing.T) {
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], 10)

	_, err := ReadFrame(bytes.NewReader(append(hdr[:], 'x', 'y')))
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
