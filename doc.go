// Package origin provides a conserved quantity that remembers where its
// parts came from.
//
// The core type is Quantity, a scalar total (any type satisfying Scalar,
// such as unit.Value) that can carry a breakdown of source labels and the
// fraction of the total each one owns. The breakdown survives the operations
// a simulation uses to move material between pools:
//
//   - Add rebuilds each source's absolute amount from both operands and
//     normalizes against the new total.
//   - Sub and SubQuantity remove material without changing composition.
//   - Mul and Div scale the total without changing composition.
//
// # Tracking
//
// Provenance bookkeeping is off by default. Reading sources from a quantity
// that is not tracking fails with ErrTrackingDisabled, and adding a tracking
// quantity to one that is not fails with ErrTrackingMismatch.
//
//	soil := origin.New(unit.New(10, unit.PgC), "soil", origin.WithTracking())
//	ocean := origin.New(unit.New(20, unit.PgC), "ocean", origin.WithTracking())
//
//	mixed, err := soil.Add(ocean)
//	if err != nil {
//	    return err
//	}
//	f, _ := mixed.Fraction("soil") // 1/3
//
// # Zero totals
//
// When an addition sums to exactly zero, fractions cannot be derived from
// amounts, so every label involved gets an equal share.
//
// # Transfers
//
// Transfer moves a fraction of one pool into another and emits capitan
// signals (TransferCompleted, TransferFailed) describing the move.
package origin
