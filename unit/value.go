package unit

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnitMismatch is returned when two values with different units are combined.
var ErrUnitMismatch = errors.New("unit mismatch")

// Value is a magnitude with a unit. The zero Value is 0 (undefined).
type Value struct {
	val   float64
	units Unit
}

// New creates a Value.
func New(v float64, u Unit) Value {
	return Value{val: v, units: u}
}

// Value returns the magnitude.
func (v Value) Value() float64 {
	return v.val
}

// Units returns the unit tag.
func (v Value) Units() Unit {
	return v.units
}

func (v Value) check(other Value, op string) error {
	if v.units != other.units {
		return fmt.Errorf("%w: %s %s and %s", ErrUnitMismatch, op, v.units, other.units)
	}
	return nil
}

// Add returns v + other.
func (v Value) Add(other Value) (Value, error) {
	if err := v.check(other, "add"); err != nil {
		return Value{}, err
	}
	return Value{val: v.val + other.val, units: v.units}, nil
}

// Sub returns v - other.
func (v Value) Sub(other Value) (Value, error) {
	if err := v.check(other, "subtract"); err != nil {
		return Value{}, err
	}
	return Value{val: v.val - other.val, units: v.units}, nil
}

// Mul returns v scaled by d.
func (v Value) Mul(d float64) Value {
	return Value{val: v.val * d, units: v.units}
}

// Div returns v divided by d.
func (v Value) Div(d float64) Value {
	return Value{val: v.val / d, units: v.units}
}

// Ratio returns the dimensionless quotient v / other.
func (v Value) Ratio(other Value) (float64, error) {
	if err := v.check(other, "divide"); err != nil {
		return 0, err
	}
	return v.val / other.val, nil
}

// Equal reports whether magnitude and unit are identical.
func (v Value) Equal(other Value) bool {
	return v.units == other.units && v.val == other.val
}

// IsZero reports whether the magnitude is zero.
func (v Value) IsZero() bool {
	return v.val == 0
}

// IsFinite reports whether the magnitude is neither infinite nor NaN.
func (v Value) IsFinite() bool {
	return !math.IsInf(v.val, 0) && !math.IsNaN(v.val)
}

// String renders the magnitude followed by the unit.
func (v Value) String() string {
	return fmt.Sprintf("%g %s", v.val, v.units)
}
