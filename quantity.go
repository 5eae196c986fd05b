package origin

import (
	"fmt"
	"math"
	"strings"
)

// Tolerance is the allowed distance from one for the sum of a tracking
// quantity's source fractions.
const Tolerance = 1e-6

// Share is one source label and the fraction of a total it owns.
type Share struct {
	Label    string
	Fraction float64
}

// Quantity is a scalar total that can carry a breakdown of where fractions of
// that total came from. Quantities are values: every operation returns a new
// Quantity and leaves its operands untouched. SetTracking is the only method
// that changes an existing Quantity.
//
// Labels are enumerated in first-encounter order. Within an addition the
// left operand's labels come first, followed by labels only the right
// operand carries.
type Quantity[S Scalar[S]] struct {
	total    S
	tracking bool

	// labels and fractions are shared between copies and never written
	// after construction.
	labels    []string
	fractions map[string]float64
}

// New creates a Quantity whose whole total originates from label.
// Tracking starts off unless WithTracking is given; the single-source
// mapping is kept either way so tracking can be switched on later.
func New[S Scalar[S]](total S, label string, opts ...Option) Quantity[S] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return Quantity[S]{
		total:     total,
		tracking:  cfg.tracking,
		labels:    []string{label},
		fractions: map[string]float64{label: 1},
	}
}

// Compose creates a tracking Quantity from an explicit breakdown. The
// fractions must sum to one unless total is zero or not finite.
func Compose[S Scalar[S]](total S, shares []Share) (Quantity[S], error) {
	labels := make([]string, 0, len(shares))
	fractions := make(map[string]float64, len(shares))
	for _, s := range shares {
		if _, dup := fractions[s.Label]; dup {
			return Quantity[S]{}, fmt.Errorf("%w: %q", ErrDuplicateLabel, s.Label)
		}
		labels = append(labels, s.Label)
		fractions[s.Label] = s.Fraction
	}
	return build(total, labels, fractions, true, Tolerance)
}

// build is the constructor used for every computed mapping. tol is the
// allowed distance of the fraction sum from one.
func build[S Scalar[S]](total S, labels []string, fractions map[string]float64, tracking bool, tol float64) (Quantity[S], error) {
	if tracking && !total.IsZero() && total.IsFinite() {
		var sum float64
		for _, l := range labels {
			sum += fractions[l]
		}
		if !(math.Abs(sum-1) <= tol) {
			return Quantity[S]{}, fmt.Errorf("%w: got %g over %d sources", ErrInvariantViolation, sum, len(labels))
		}
	}
	return Quantity[S]{
		total:     total,
		tracking:  tracking,
		labels:    labels,
		fractions: fractions,
	}, nil
}

// IsTracking reports whether provenance is being tracked.
func (q Quantity[S]) IsTracking() bool {
	return q.tracking
}

// SetTracking switches provenance tracking on or off. The stored mapping is
// not recomputed: a quantity produced while tracking was off has no sources.
func (q *Quantity[S]) SetTracking(track bool) {
	q.tracking = track
}

// Total returns the conserved amount.
func (q Quantity[S]) Total() S {
	return q.total
}

// Sources returns the labels present in enumeration order.
func (q Quantity[S]) Sources() ([]string, error) {
	if !q.tracking {
		return nil, ErrTrackingDisabled
	}
	out := make([]string, len(q.labels))
	copy(out, q.labels)
	return out, nil
}

// Fraction returns the share of the total owned by label, or zero when the
// label is absent.
func (q Quantity[S]) Fraction(label string) (float64, error) {
	if !q.tracking {
		return 0, ErrTrackingDisabled
	}
	return q.fraction(label), nil
}

// Shares returns every (label, fraction) pair in enumeration order.
func (q Quantity[S]) Shares() ([]Share, error) {
	if !q.tracking {
		return nil, ErrTrackingDisabled
	}
	out := make([]Share, len(q.labels))
	for i, l := range q.labels {
		out[i] = Share{Label: l, Fraction: q.fractions[l]}
	}
	return out, nil
}

func (q Quantity[S]) fraction(label string) float64 {
	return q.fractions[label]
}

func (q Quantity[S]) has(label string) bool {
	_, ok := q.fractions[label]
	return ok
}

// Equal reports whether q and other are identical: equal totals, equal
// tracking flags and, when both are tracking, the same labels with exactly
// equal fractions. Label order is not compared.
func (q Quantity[S]) Equal(other Quantity[S]) bool {
	if !q.total.Equal(other.total) || q.tracking != other.tracking {
		return false
	}
	if !q.tracking {
		return true
	}
	if len(q.labels) != len(other.labels) {
		return false
	}
	for _, l := range q.labels {
		if !other.has(l) || q.fractions[l] != other.fractions[l] {
			return false
		}
	}
	return true
}

// String renders the total followed, when tracking, by one line per source.
func (q Quantity[S]) String() string {
	var b strings.Builder
	b.WriteString(q.total.String())
	if q.tracking {
		for _, l := range q.labels {
			fmt.Fprintf(&b, "\n\t%s: %g", l, q.fractions[l])
		}
	}
	return b.String()
}
