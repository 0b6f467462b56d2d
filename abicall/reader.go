package abicall

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	// ErrSelectorMismatch is returned when a payload does not begin with the
	// expected entry-point selector.
	ErrSelectorMismatch = errors.New("call selector mismatch")

	// ErrShortBuffer is returned when a read would run past the end of the
	// payload, including dynamic regions whose declared extent overruns it.
	ErrShortBuffer = errors.New("call payload too short")
)

// Reader walks a selector-prefixed call payload slot by slot. It is the
// symmetric counterpart of Builder: every read is bounds-checked and dynamic
// regions are resolved through their offset slot.
type Reader struct {
	params []byte // parameter block, selector stripped
	pos    int
}

// NewReader validates that input invokes the entry point identified by sel
// and positions the reader at the first parameter slot.
func NewReader(input []byte, sel [SelectorSize]byte) (*Reader, error) {
	if len(input) < SelectorSize {
		return nil, ErrShortBuffer
	}
	if !bytes.Equal(input[:SelectorSize], sel[:]) {
		return nil, ErrSelectorMismatch
	}
	return &Reader{params: input[SelectorSize:]}, nil
}

// Word consumes the next 32-byte slot.
func (r *Reader) Word() ([WordSize]byte, error) {
	var w [WordSize]byte
	if r.pos+WordSize > len(r.params) {
		return w, ErrShortBuffer
	}
	copy(w[:], r.params[r.pos:r.pos+WordSize])
	r.pos += WordSize
	return w, nil
}

// Address consumes a slot and returns the address held in its low 20 bytes.
func (r *Reader) Address() (common.Address, error) {
	w, err := r.Word()
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(w[:]), nil
}

// Uint consumes a slot as a 256-bit unsigned integer.
func (r *Reader) Uint() (*uint256.Int, error) {
	w, err := r.Word()
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes32(w[:]), nil
}

// Bytes consumes an offset slot and resolves the dynamic region it points
// at: a length slot followed by that many payload bytes. The returned slice
// is a copy.
func (r *Reader) Bytes() ([]byte, error) {
	off, err := r.Uint()
	if err != nil {
		return nil, err
	}
	// Compare against the remaining room instead of adding to the declared
	// values: hostile offset or length words near 2^64 would wrap an
	// unchecked sum and slip past the check.
	total := uint64(len(r.params))
	if total < WordSize || !off.IsUint64() || off.Uint64() > total-WordSize {
		return nil, ErrShortBuffer
	}
	start := off.Uint64()
	length := new(uint256.Int).SetBytes32(r.params[start : start+WordSize])
	if !length.IsUint64() || length.Uint64() > total-start-WordSize {
		return nil, ErrShortBuffer
	}
	data := make([]byte, length.Uint64())
	copy(data, r.params[start+WordSize:])
	return data, nil
}

// TransferCall is the decoded form of a transferFrom invocation as seen on
// the handler side.
type TransferCall struct {
	AssetData []byte
	From      common.Address
	To        common.Address
	Amount    *uint256.Int
}

// DecodeTransferFrom parses a payload built by EncodeTransferFrom back into
// its fields. It accepts exactly the documented layout.
func DecodeTransferFrom(input []byte) (*TransferCall, error) {
	r, err := NewReader(input, TransferFromSelector)
	if err != nil {
		return nil, err
	}
	assetData, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	from, err := r.Address()
	if err != nil {
		return nil, err
	}
	to, err := r.Address()
	if err != nil {
		return nil, err
	}
	amount, err := r.Uint()
	if err != nil {
		return nil, err
	}
	return &TransferCall{AssetData: assetData, From: from, To: to, Amount: amount}, nil
}
