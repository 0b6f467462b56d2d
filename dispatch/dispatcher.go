package dispatch

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/clydemeng/assetproxy/abicall"
)

// ReturnDataCap bounds how much of a handler's raw output the dispatcher
// captures for failure decoding. Output beyond the cap is discarded, which
// at worst truncates the decoded reason text.
const ReturnDataCap = 256

// Dispatcher locates the handler responsible for a tag-prefixed asset
// payload and forwards a transfer request to it over the fixed call layout.
//
// Dispatch is single-shot with exactly two terminal outcomes, success or
// failure; there is no intermediate state and no retry loop. The dispatcher
// performs no compensating rollback of partial handler effects: it assumes
// the enclosing host operation commits or discards everything as a unit, so
// signalling failure is equivalent to "nothing happened".
type Dispatcher struct {
	registry *ProxyRegistry
	logger   log.Logger
}

// NewDispatcher returns a dispatcher reading handler bindings from registry.
func NewDispatcher(registry *ProxyRegistry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   log.New("module", "assetproxy"),
	}
}

// ForwardsFullBudget reports the budget-forwarding policy: the caller's
// entire remaining budget is handed to the handler rather than a capped
// subset, so handlers are never artificially starved. The accepted trade-off
// is that a misbehaving handler may drain the whole enclosing operation's
// allowance.
func (d *Dispatcher) ForwardsFullBudget() bool {
	return true
}

// DispatchTransfer validates req, looks up the handler bound to the leading
// 4-byte tag of req.AssetData and invokes its transfer entry point with the
// documented call layout, forwarding budget in full. Failures are returned
// to the caller, never swallowed:
//
//   - asset data too short to carry a tag plus payload: ErrInvalidAssetDataLength
//   - no binding for the extracted tag: *UnknownAssetKindError
//   - handler signalled failure: *TransferFailedError, carrying the decoded
//     reason text when the handler's failure output was decodable
//
// Transfers of zero amount and self-transfers succeed immediately without
// touching the registry or any handler.
func (d *Dispatcher) DispatchTransfer(req TransferRequest, budget *Budget) error {
	dispatchCounter.Inc(1)

	// Nothing moves, so skip the external invocation entirely. Self-transfers
	// are included: a handler never gets the chance to apply one incorrectly.
	if req.Amount == nil || req.Amount.IsZero() || req.From == req.To {
		shortCircuitCounter.Inc(1)
		return nil
	}
	if len(req.AssetData) <= TagSize {
		dispatchFailureCounter.Inc(1)
		return ErrInvalidAssetDataLength
	}
	tag := TagFromData(req.AssetData)
	handler, ok := d.registry.Lookup(tag)
	if !ok {
		dispatchFailureCounter.Inc(1)
		return &UnknownAssetKindError{Tag: tag}
	}

	input := abicall.EncodeTransferFrom(req.AssetData, req.From, req.To, req.Amount)
	d.logger.Debug("Dispatching asset transfer", "tag", tag, "from", req.From, "to", req.To,
		"amount", req.Amount, "correlation", req.CorrelationID, "budget", budget)

	ret, err := handler.Call(input, budget)
	if err == nil {
		// The handler's return value is not interpreted: absence of a
		// failure signal means the transfer was applied.
		return nil
	}
	if len(ret) > ReturnDataCap {
		ret = ret[:ReturnDataCap]
	}
	reason, decoded := abicall.RevertReason(ret)

	dispatchFailureCounter.Inc(1)
	d.logger.Warn("Asset transfer failed", "tag", tag, "correlation", req.CorrelationID,
		"decoded", decoded, "reason", reason, "err", err)
	return &TransferFailedError{
		Tag:           tag,
		CorrelationID: req.CorrelationID,
		AssetData:     req.AssetData,
		Reason:        reason,
		Decoded:       decoded,
		Err:           err,
	}
}
