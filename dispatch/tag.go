// Package dispatch maintains the mapping from asset-kind tags to registered
// transfer handlers and forwards transfer requests to them over the fixed
// call layout implemented by package abicall.
package dispatch

import "github.com/ethereum/go-ethereum/common/hexutil"

// TagSize is the width of the asset-kind discriminator prefixing asset data.
const TagSize = 4

// Tag is the 4-byte asset-kind discriminator identifying which handler
// understands a given payload. It is pure data, never a type identity.
type Tag [TagSize]byte

// TagFromData extracts the tag from the first 4 bytes of tag-prefixed asset
// data, regardless of what the remaining bytes contain. The caller must have
// checked len(data) >= TagSize.
func TagFromData(data []byte) Tag {
	var t Tag
	copy(t[:], data[:TagSize])
	return t
}

// Hex returns the 0x-prefixed hex form of the tag.
func (t Tag) Hex() string {
	return hexutil.Encode(t[:])
}

func (t Tag) String() string {
	return t.Hex()
}
