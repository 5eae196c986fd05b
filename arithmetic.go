package origin

import (
	"fmt"
	"math"
)

// Add combines flux into q. Totals are summed by the scalar. When both
// operands are tracking, each source's absolute amount is rebuilt from both
// sides before the result is normalized against the new total, since
// fractions relative to different totals cannot be merged directly.
//
// A zero result total splits the fractions evenly across every label seen.
// Otherwise labels that end up owning nothing are dropped.
//
// Both operands must agree on tracking; ErrTrackingMismatch otherwise.
func (q Quantity[S]) Add(flux Quantity[S]) (Quantity[S], error) {
	if q.tracking != flux.tracking {
		return Quantity[S]{}, fmt.Errorf("%w: left tracking=%t, right tracking=%t",
			ErrTrackingMismatch, q.tracking, flux.tracking)
	}

	total, err := q.total.Add(flux.total)
	if err != nil {
		return Quantity[S]{}, fmt.Errorf("adding totals: %w", err)
	}
	if !q.tracking {
		return build(total, nil, nil, false, Tolerance)
	}

	labels := q.union(flux)
	amounts := make([]S, len(labels))
	for i, l := range labels {
		amount, err := q.total.Mul(q.fraction(l)).Add(flux.total.Mul(flux.fraction(l)))
		if err != nil {
			return Quantity[S]{}, fmt.Errorf("source %q: %w", l, err)
		}
		amounts[i] = amount
	}

	fractions := make(map[string]float64, len(labels))
	if total.IsZero() {
		even := 1 / float64(len(labels))
		for _, l := range labels {
			fractions[l] = even
		}
		return build(total, labels, fractions, true, Tolerance)
	}

	// Rounding in the per-source amounts grows with how much of them
	// cancels out in the total, so the sum check is widened by the same
	// factor.
	var spread float64
	kept := make([]string, 0, len(labels))
	for i, l := range labels {
		if amounts[i].IsZero() {
			continue
		}
		f, err := amounts[i].Ratio(total)
		if err != nil {
			return Quantity[S]{}, fmt.Errorf("source %q: %w", l, err)
		}
		kept = append(kept, l)
		fractions[l] = f
		spread += math.Abs(f)
	}
	return build(total, kept, fractions, true, Tolerance*math.Max(1, spread))
}

// union returns q's labels followed by other's labels that q lacks.
func (q Quantity[S]) union(other Quantity[S]) []string {
	labels := make([]string, 0, len(q.labels)+len(other.labels))
	labels = append(labels, q.labels...)
	for _, l := range other.labels {
		if !q.has(l) {
			labels = append(labels, l)
		}
	}
	return labels
}

// Sub removes amount from the total. The composition of what remains is
// assumed to match the composition before removal, so the mapping and
// tracking flag carry over unchanged.
func (q Quantity[S]) Sub(amount S) (Quantity[S], error) {
	total, err := q.total.Sub(amount)
	if err != nil {
		return Quantity[S]{}, fmt.Errorf("subtracting total: %w", err)
	}
	return q.withTotal(total), nil
}

// SubQuantity subtracts other's total from q. other's mapping and tracking
// flag are ignored.
func (q Quantity[S]) SubQuantity(other Quantity[S]) (Quantity[S], error) {
	return q.Sub(other.total)
}

// Mul scales the total by d, keeping the composition.
func (q Quantity[S]) Mul(d float64) Quantity[S] {
	return q.withTotal(q.total.Mul(d))
}

// Mul scales q by d. It is the scalar-first form of Quantity.Mul and returns
// an identical result.
func Mul[S Scalar[S]](d float64, q Quantity[S]) Quantity[S] {
	return q.Mul(d)
}

// Div divides the total by d, keeping the composition. Division by zero is
// not rejected: the total becomes whatever the scalar yields, typically
// infinite or NaN.
func (q Quantity[S]) Div(d float64) Quantity[S] {
	return q.withTotal(q.total.Div(d))
}

// withTotal is the shared rescaling path. The mapping is carried verbatim,
// so there is nothing new to validate.
func (q Quantity[S]) withTotal(total S) Quantity[S] {
	return Quantity[S]{
		total:     total,
		tracking:  q.tracking,
		labels:    q.labels,
		fractions: q.fractions,
	}
}
