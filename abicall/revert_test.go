package abicall

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRevertRoundTrip encodes a message into the standard text-error layout
// and decodes it back unchanged.
func TestRevertRoundTrip(t *testing.T) {
	for _, reason := range []string{"", "x", "INSUFFICIENT_BALANCE", strings.Repeat("long reason ", 10)} {
		buf := EncodeRevert(reason)
		got, ok := RevertReason(buf)
		require.True(t, ok, "reason %q", reason)
		require.Equal(t, reason, got)
	}
}

// TestRevertLayout checks the encoded buffer structure: selector, offset
// slot (32), length slot, message bytes padded to a slot boundary.
func TestRevertLayout(t *testing.T) {
	buf := EncodeRevert("INSUFFICIENT_BALANCE") // 20 bytes of message
	require.Len(t, buf, revertHeaderSize+WordSize)
	require.Equal(t, errorSelector[:], buf[:SelectorSize])
	require.Equal(t, byte(WordSize), buf[SelectorSize+WordSize-1])
	require.Equal(t, byte(20), buf[revertHeaderSize-1])
	require.Equal(t, "INSUFFICIENT_BALANCE", string(buf[revertHeaderSize:revertHeaderSize+20]))
}

// TestRevertTruncation simulates a bounded capture: when the declared length
// exceeds the usable remainder of the buffer, the decoder yields the prefix
// that was actually captured instead of reading out of bounds.
func TestRevertTruncation(t *testing.T) {
	reason := strings.Repeat("A", 200)
	buf := EncodeRevert(reason)

	captured := buf[:256] // capture cap; usable remainder is 256-68=188
	got, ok := RevertReason(captured)
	require.True(t, ok)
	require.Equal(t, reason[:188], got)
}

// TestRevertUndecodable covers the degraded outcomes: short buffers and
// foreign selectors yield no message, never an error.
func TestRevertUndecodable(t *testing.T) {
	// Below the minimum header of selector + offset slot + length slot.
	for _, n := range []int{0, 4, 36, revertHeaderSize - 1} {
		_, ok := RevertReason(make([]byte, n))
		require.False(t, ok, "length %d", n)
	}

	// Exactly the header with a zero-length message decodes to "".
	buf := EncodeRevert("")
	require.Len(t, buf, revertHeaderSize)
	got, ok := RevertReason(buf)
	require.True(t, ok)
	require.Equal(t, "", got)

	// Foreign selector.
	buf = EncodeRevert("nope")
	buf[0] ^= 0xff
	_, ok = RevertReason(buf)
	require.False(t, ok)
}
