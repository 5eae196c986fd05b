package origin

import "github.com/zoobzio/capitan"

// Transfer signals.
var (
	// TransferCompleted is emitted when a flux has been moved between pools.
	TransferCompleted = capitan.NewSignal(
		"origin.transfer.completed",
		"Flux moved between pools",
	)

	// TransferFailed is emitted when a transfer is rejected.
	TransferFailed = capitan.NewSignal(
		"origin.transfer.failed",
		"Flux could not be moved",
	)
)
