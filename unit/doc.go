// Package unit provides Value, a magnitude tagged with a unit, for use as the
// total of an origin.Quantity.
//
// Values of different units never combine: Add, Sub and Ratio return
// ErrUnitMismatch instead. There is no conversion between units. Scaling by
// a dimensionless factor follows IEEE 754, so dividing by zero produces an
// infinite or NaN magnitude rather than an error.
package unit
