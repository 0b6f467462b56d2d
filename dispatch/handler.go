package dispatch

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/clydemeng/assetproxy/abicall"
)

// Handler is the capability contract of a registrable asset proxy.
//
// KindTag reports the 4-byte asset kind the handler understands; it must be
// pure and deterministic and is queried once, at registration time.
//
// Call is the raw transfer entry point. It receives the call payload built
// by the dispatcher together with the caller's remaining budget, and signals
// failure through a non-nil error with its raw failure output (if any) as
// the returned buffer. On success the returned buffer is not interpreted.
type Handler interface {
	KindTag() Tag
	Call(input []byte, budget *Budget) ([]byte, error)
}

// TransferBackend performs the actual transfer effect for one asset kind
// against whatever resource it manages. Implementations must report failure
// on any invalid input rather than silently no-op.
type TransferBackend interface {
	TransferFrom(assetData []byte, from, to common.Address, amount *uint256.Int) error
}

// proxyHandler adapts a TransferBackend to the raw Handler contract. It is
// the handler-side counterpart of the dispatcher's payload construction:
// the wire payload is decoded back into its fields and backend failures are
// encoded as standard text-error buffers.
type proxyHandler struct {
	tag     Tag
	backend TransferBackend
}

// NewHandler wraps backend into a registrable Handler for tag.
func NewHandler(tag Tag, backend TransferBackend) Handler {
	return &proxyHandler{tag: tag, backend: backend}
}

func (p *proxyHandler) KindTag() Tag {
	return p.tag
}

func (p *proxyHandler) Call(input []byte, budget *Budget) ([]byte, error) {
	call, err := abicall.DecodeTransferFrom(input)
	if err != nil {
		return abicall.EncodeRevert(err.Error()), err
	}
	if err := p.backend.TransferFrom(call.AssetData, call.From, call.To, call.Amount); err != nil {
		return abicall.EncodeRevert(err.Error()), err
	}
	return nil, nil
}
