package origin

import "errors"

var (
	// ErrTrackingDisabled is returned when provenance is read from a
	// quantity that is not tracking.
	ErrTrackingDisabled = errors.New("tracking disabled")

	// ErrTrackingMismatch is returned when two quantities are added and only
	// one of them is tracking.
	ErrTrackingMismatch = errors.New("tracking mismatch")

	// ErrInvariantViolation is returned when a provenance mapping does not
	// sum to one.
	ErrInvariantViolation = errors.New("source fractions do not sum to one")

	// ErrDuplicateLabel is returned by Compose when a label appears twice.
	ErrDuplicateLabel = errors.New("duplicate source label")

	// ErrInvalidRate is returned by Transfer for rates outside [0, 1].
	ErrInvalidRate = errors.New("invalid transfer rate")
)
