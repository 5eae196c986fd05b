package origin

// Scalar is the contract a total must satisfy to be tracked. Quantity never
// inspects a scalar's magnitude or units directly; every arithmetic step is
// delegated to these methods.
type Scalar[S any] interface {
	// Add returns the sum of the receiver and other.
	Add(other S) (S, error)

	// Sub returns the receiver minus other.
	Sub(other S) (S, error)

	// Mul scales the receiver by a dimensionless factor.
	Mul(d float64) S

	// Div divides the receiver by a dimensionless factor. Division by zero
	// must yield an infinite or NaN magnitude, not an error.
	Div(d float64) S

	// Ratio returns the dimensionless quotient receiver / other.
	Ratio(other S) (float64, error)

	// Equal reports whether both magnitude and units match exactly.
	Equal(other S) bool

	// IsZero reports whether the magnitude is exactly zero.
	IsZero() bool

	// IsFinite reports whether the magnitude is neither infinite nor NaN.
	IsFinite() bool

	String() string
}
