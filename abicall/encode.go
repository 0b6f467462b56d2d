// Package abicall builds and parses the fixed-layout byte buffers used to
// invoke an asset-proxy handler and to read back its failure reason. The
// layout is an external convention and must be reproduced bit-for-bit: a
// 4-byte selector followed by 32-byte parameter slots, with dynamic byte
// regions placed behind the static block, length-prefixed and zero-padded to
// a 32-byte boundary.
package abicall

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

const (
	// SelectorSize is the width of the entry-point discriminator prefixing
	// every call payload.
	SelectorSize = 4

	// WordSize is the width of a parameter slot. Every static value occupies
	// a full slot with the value in its low-order bytes.
	WordSize = 32
)

// TransferFromSelector identifies the transfer entry point of a registered
// handler: transferFrom(bytes,address,address,uint256).
var TransferFromSelector = selector("transferFrom(bytes,address,address,uint256)")

// selector derives the 4-byte entry-point discriminator from a canonical
// signature string.
func selector(signature string) [SelectorSize]byte {
	var sel [SelectorSize]byte
	copy(sel[:], crypto.Keccak256([]byte(signature)))
	return sel
}

// Builder assembles a selector-prefixed call payload slot by slot. The zero
// value is not usable; construct with NewBuilder. Methods return the builder
// so fixed layouts read as a single chain.
type Builder struct {
	buf []byte
}

// NewBuilder starts a payload invoking the entry point identified by sel.
func NewBuilder(sel [SelectorSize]byte) *Builder {
	return &Builder{buf: append([]byte(nil), sel[:]...)}
}

// Word appends a raw 32-byte slot.
func (b *Builder) Word(w [WordSize]byte) *Builder {
	b.buf = append(b.buf, w[:]...)
	return b
}

// Address appends an address slot, the 20-byte value in the low-order bytes.
func (b *Builder) Address(a common.Address) *Builder {
	var w [WordSize]byte
	copy(w[WordSize-common.AddressLength:], a[:])
	return b.Word(w)
}

// Uint appends a 256-bit unsigned integer slot, big-endian. A nil value
// writes a zero slot.
func (b *Builder) Uint(v *uint256.Int) *Builder {
	var w [WordSize]byte
	if v != nil {
		w = v.Bytes32()
	}
	return b.Word(w)
}

// Offset appends the byte offset of a dynamic region, counted from the start
// of the parameter block (selector excluded).
func (b *Builder) Offset(off uint64) *Builder {
	return b.Uint(uint256.NewInt(off))
}

// Bytes appends a dynamic byte region: a length slot followed by the payload
// zero-padded to the next slot boundary.
func (b *Builder) Bytes(data []byte) *Builder {
	b.Uint(uint256.NewInt(uint64(len(data))))
	b.buf = append(b.buf, data...)
	if rem := len(data) % WordSize; rem != 0 {
		b.buf = append(b.buf, make([]byte, WordSize-rem)...)
	}
	return b
}

// Build returns the assembled payload. The buffer is not copied; the builder
// must not be reused afterwards.
func (b *Builder) Build() []byte {
	return b.buf
}

// transferFromHeadSize is the static parameter block of transferFrom: four
// slots (asset-data offset, from, to, amount). The dynamic asset-data region
// starts directly behind it, hence the fixed 128-byte offset.
const transferFromHeadSize = 4 * WordSize

// EncodeTransferFrom builds the call payload invoking a handler's transfer
// entry point:
//
//	selector | offset(=128) | from | to | amount | len(assetData) | assetData+pad
//
// Any reordering or omitted padding makes the payload unparseable by the
// handler.
func EncodeTransferFrom(assetData []byte, from, to common.Address, amount *uint256.Int) []byte {
	return NewBuilder(TransferFromSelector).
		Offset(transferFromHeadSize).
		Address(from).
		Address(to).
		Uint(amount).
		Bytes(assetData).
		Build()
}
