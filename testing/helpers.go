// Package testing provides test helpers for code that builds on
// origin.Quantity.
package testing

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/origin"
)

// RequireSources fails the test if q is not tracking or its labels differ
// from want, order included.
func RequireSources[S origin.Scalar[S]](t *testing.T, q origin.Quantity[S], want ...string) {
	t.Helper()
	got, err := q.Sources()
	if err != nil {
		t.Fatalf("Sources() failed: %v", err)
	}
	if want == nil {
		want = []string{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sources mismatch (-want +got):\n%s", diff)
	}
}

// RequireFraction fails the test if the fraction owned by label is further
// than tol from want.
func RequireFraction[S origin.Scalar[S]](t *testing.T, q origin.Quantity[S], label string, want, tol float64) {
	t.Helper()
	got, err := q.Fraction(label)
	if err != nil {
		t.Fatalf("Fraction(%q) failed: %v", label, err)
	}
	if math.Abs(got-want) > tol {
		t.Fatalf("fraction of %q: expected %g (±%g), got %g", label, want, tol, got)
	}
}

// RequireNormalized fails the test if q's fractions do not sum to one within
// origin.Tolerance. Quantities with a zero total are checked too, since an
// even split also sums to one.
func RequireNormalized[S origin.Scalar[S]](t *testing.T, q origin.Quantity[S]) {
	t.Helper()
	shares, err := q.Shares()
	if err != nil {
		t.Fatalf("Shares() failed: %v", err)
	}
	var sum float64
	for _, s := range shares {
		sum += s.Fraction
	}
	if math.Abs(sum-1) > origin.Tolerance {
		t.Fatalf("fractions sum to %g, expected 1", sum)
	}
}

// RequireEqual fails the test if got and want are not identical.
func RequireEqual[S origin.Scalar[S]](t *testing.T, got, want origin.Quantity[S]) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("quantities differ:\ngot:  %s\nwant: %s", got, want)
	}
}
