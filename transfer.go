package origin

import (
	"context"
	"fmt"
	"math"

	"github.com/zoobzio/capitan"
)

// TransferResult holds the pools after a transfer and the flux that moved.
type TransferResult[S Scalar[S]] struct {
	From Quantity[S]
	To   Quantity[S]
	Flux Quantity[S]
}

// Transfer moves rate of from into to. The flux keeps from's composition,
// from loses the flux total, and to absorbs the flux through Add. The
// inputs are not modified.
//
// Emits TransferCompleted on success and TransferFailed otherwise.
func Transfer[S Scalar[S]](ctx context.Context, from, to Quantity[S], rate float64) (TransferResult[S], error) {
	res, err := transfer(from, to, rate)
	if err != nil {
		capitan.Emit(ctx, TransferFailed,
			KeyRate.Field(rate),
			KeyError.Field(err.Error()),
		)
		return TransferResult[S]{}, err
	}

	sources := 0
	if res.To.tracking {
		sources = len(res.To.labels)
	}
	capitan.Emit(ctx, TransferCompleted,
		KeyRate.Field(rate),
		KeyFluxTotal.Field(res.Flux.total.String()),
		KeySourceCount.Field(sources),
	)
	return res, nil
}

func transfer[S Scalar[S]](from, to Quantity[S], rate float64) (TransferResult[S], error) {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return TransferResult[S]{}, fmt.Errorf("%w: %g", ErrInvalidRate, rate)
	}

	flux := from.Mul(rate)
	remaining, err := from.SubQuantity(flux)
	if err != nil {
		return TransferResult[S]{}, fmt.Errorf("removing flux: %w", err)
	}
	dest, err := to.Add(flux)
	if err != nil {
		return TransferResult[S]{}, fmt.Errorf("adding flux: %w", err)
	}
	return TransferResult[S]{From: remaining, To: dest, Flux: flux}, nil
}
