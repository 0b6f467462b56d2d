package dispatch

import "github.com/ethereum/go-ethereum/metrics"

var (
	registrationCounter = metrics.NewRegisteredCounter("assetproxy/registrations", nil)

	// dispatch/total counts every DispatchTransfer call, including the
	// short-circuited ones, which are additionally counted under
	// dispatch/shortcircuit.
	dispatchCounter        = metrics.NewRegisteredCounter("assetproxy/dispatch/total", nil)
	shortCircuitCounter    = metrics.NewRegisteredCounter("assetproxy/dispatch/shortcircuit", nil)
	dispatchFailureCounter = metrics.NewRegisteredCounter("assetproxy/dispatch/failure", nil)
)
