package abicall

import (
	"bytes"

	"github.com/holiman/uint256"
)

// errorSelector matches the standard text-error convention, Error(string),
// used by handlers to report a human-readable failure reason.
var errorSelector = selector("Error(string)")

// revertHeaderSize is the minimum viable text-error encoding: the selector,
// the offset slot and the length slot. Anything shorter carries no message.
const revertHeaderSize = SelectorSize + 2*WordSize

// EncodeRevert builds a standard text-error buffer carrying reason.
func EncodeRevert(reason string) []byte {
	return NewBuilder(errorSelector).
		Offset(WordSize).
		Bytes([]byte(reason)).
		Build()
}

// RevertReason attempts to recover the text message from a raw failure
// buffer. It never fails: buffers below the minimum header size or led by a
// foreign selector yield ok=false, and a declared length overrunning the
// captured buffer is truncated to the usable remainder rather than read out
// of bounds. Callers must still surface the failure with whatever context
// they hold even when no text is recovered.
func RevertReason(ret []byte) (reason string, ok bool) {
	if len(ret) < revertHeaderSize {
		return "", false
	}
	if !bytes.Equal(ret[:SelectorSize], errorSelector[:]) {
		return "", false
	}
	declared := new(uint256.Int).SetBytes32(ret[SelectorSize+WordSize : revertHeaderSize])
	n := uint64(len(ret) - revertHeaderSize)
	if declared.IsUint64() && declared.Uint64() < n {
		n = declared.Uint64()
	}
	return string(ret[revertHeaderSize : revertHeaderSize+n]), true
}
