package dispatch

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// FailureReason classifies the terminal outcome of a failed registration or
// dispatch.
type FailureReason int

const (
	FailureUnspecified FailureReason = iota
	FailureAlreadyRegistered
	FailureInvalidAssetDataLength
	FailureUnknownAssetKind
	FailureTransferFailed
)

// String returns a human-readable string for the reason.
func (r FailureReason) String() string {
	switch r {
	case FailureAlreadyRegistered:
		return "already_registered"
	case FailureInvalidAssetDataLength:
		return "invalid_asset_data_length"
	case FailureUnknownAssetKind:
		return "unknown_asset_kind"
	case FailureTransferFailed:
		return "transfer_failed"
	}
	return "unspecified"
}

// ErrInvalidAssetDataLength rejects asset data too short to carry a tag plus
// at least one byte of handler payload. A tag alone cannot describe a
// transferable asset.
var ErrInvalidAssetDataLength = errors.New("asset data length must exceed tag size")

// AlreadyRegisteredError reports a registration attempt for a tag that
// already has a binding. The existing binding is left untouched.
type AlreadyRegisteredError struct {
	Tag      Tag
	Existing Handler
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("asset kind %s already registered", e.Tag)
}

// UnknownAssetKindError reports that no handler is bound to the tag
// extracted from the asset data.
type UnknownAssetKindError struct {
	Tag Tag
}

func (e *UnknownAssetKindError) Error() string {
	return fmt.Sprintf("no handler registered for asset kind %s", e.Tag)
}

// TransferFailedError reports a handler invocation that did not succeed. It
// carries everything a caller needs for a precise diagnostic: the asset
// kind, the correlation token, the original asset data and, when the
// handler's failure output was decodable, the reason text it reported.
type TransferFailedError struct {
	Tag           Tag
	CorrelationID common.Hash
	AssetData     []byte
	Reason        string // decoded failure text, empty when none was recovered
	Decoded       bool   // whether Reason was recovered from the handler output
	Err           error  // underlying handler error
}

func (e *TransferFailedError) Error() string {
	if e.Decoded {
		return fmt.Sprintf("asset transfer failed: tag=%s correlation=%s reason=%q", e.Tag, e.CorrelationID, e.Reason)
	}
	return fmt.Sprintf("asset transfer failed: tag=%s correlation=%s", e.Tag, e.CorrelationID)
}

// Unwrap exposes the raw handler error for errors.Is/As chains.
func (e *TransferFailedError) Unwrap() error {
	return e.Err
}

// ReasonOf classifies err into a FailureReason. Errors this package did not
// produce map to FailureUnspecified.
func ReasonOf(err error) FailureReason {
	if err == nil {
		return FailureUnspecified
	}
	if errors.Is(err, ErrInvalidAssetDataLength) {
		return FailureInvalidAssetDataLength
	}
	var already *AlreadyRegisteredError
	if errors.As(err, &already) {
		return FailureAlreadyRegistered
	}
	var unknown *UnknownAssetKindError
	if errors.As(err, &unknown) {
		return FailureUnknownAssetKind
	}
	var failed *TransferFailedError
	if errors.As(err, &failed) {
		return FailureTransferFailed
	}
	return FailureUnspecified
}
