package dispatch

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// TransferRequest carries the fields of a single asset-transfer dispatch
// across the dispatcher boundary. It is transient: created and consumed
// within one dispatch invocation.
type TransferRequest struct {
	AssetData []byte         // Tag-prefixed payload, handler-specific beyond the tag
	From      common.Address // Party giving up the asset
	To        common.Address // Party receiving the asset
	Amount    *uint256.Int   // Units to transfer; nil is treated as zero

	// CorrelationID is an opaque caller-supplied token (e.g. the hash of an
	// originating order) carried through purely for diagnostics; it never
	// influences dispatch logic.
	CorrelationID common.Hash
}
