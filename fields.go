package origin

import "github.com/zoobzio/capitan"

// Field keys for Transfer events.
var (
	// KeyRate is the fraction of the source pool moved.
	KeyRate = capitan.NewFloat64Key("rate")

	// KeyFluxTotal is the rendered total of the moved flux.
	KeyFluxTotal = capitan.NewStringKey("flux_total")

	// KeySourceCount is the number of sources in the destination after the move.
	KeySourceCount = capitan.NewIntKey("source_count")

	// KeyError is the error message when a transfer fails.
	KeyError = capitan.NewStringKey("error")
)
