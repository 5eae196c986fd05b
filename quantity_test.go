package origin

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/origin/unit"
)

var _ Scalar[unit.Value] = unit.Value{}

func pgc(v float64) unit.Value {
	return unit.New(v, unit.PgC)
}

func tracked(v float64, label string) Quantity[unit.Value] {
	return New(pgc(v), label, WithTracking())
}

func TestNew_TrackingOffByDefault(t *testing.T) {
	x := New(pgc(1), "x")
	if x.IsTracking() {
		t.Error("expected tracking to start off")
	}
	if !x.Total().Equal(pgc(1)) {
		t.Errorf("expected total 1 Pg C, got %s", x.Total())
	}
}

func TestNew_WithTracking(t *testing.T) {
	x := New(pgc(1), "x", WithTracking())
	if !x.IsTracking() {
		t.Fatal("expected tracking on")
	}
	frac, err := x.Fraction("x")
	if err != nil {
		t.Fatalf("Fraction failed: %v", err)
	}
	if frac != 1 {
		t.Errorf("expected initial fraction 1, got %g", frac)
	}
}

func TestSetTracking(t *testing.T) {
	x := New(unit.Value{}, "x")

	x.SetTracking(true)
	if !x.IsTracking() {
		t.Error("turning on tracking failed")
	}
	x.SetTracking(false)
	if x.IsTracking() {
		t.Error("turning off tracking failed")
	}
}

func TestSetTracking_KeepsSingleSource(t *testing.T) {
	x := New(pgc(1), "x")
	x.SetTracking(true)

	sources, err := x.Sources()
	if err != nil {
		t.Fatalf("Sources failed: %v", err)
	}
	if diff := cmp.Diff([]string{"x"}, sources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
}

func TestSetTracking_DoesNotAffectCopies(t *testing.T) {
	x := tracked(1, "x")
	y := x
	y.SetTracking(false)

	if !x.IsTracking() {
		t.Error("expected original to keep tracking")
	}
}

func TestDisabledReads(t *testing.T) {
	x := New(pgc(1), "x")

	if _, err := x.Sources(); !errors.Is(err, ErrTrackingDisabled) {
		t.Errorf("Sources: expected ErrTrackingDisabled, got %v", err)
	}
	if _, err := x.Fraction("x"); !errors.Is(err, ErrTrackingDisabled) {
		t.Errorf("Fraction: expected ErrTrackingDisabled, got %v", err)
	}
	if _, err := x.Shares(); !errors.Is(err, ErrTrackingDisabled) {
		t.Errorf("Shares: expected ErrTrackingDisabled, got %v", err)
	}
}

func TestFraction_AbsentLabel(t *testing.T) {
	x := tracked(1, "x")
	frac, err := x.Fraction("missing")
	if err != nil {
		t.Fatalf("Fraction failed: %v", err)
	}
	if frac != 0 {
		t.Errorf("expected 0 for absent label, got %g", frac)
	}
}

func TestSources_ReturnsCopy(t *testing.T) {
	x := tracked(1, "x")
	sources, _ := x.Sources()
	sources[0] = "mutated"

	again, _ := x.Sources()
	if again[0] != "x" {
		t.Errorf("expected internal labels untouched, got %q", again[0])
	}
}

func TestCompose(t *testing.T) {
	q, err := Compose(pgc(4), []Share{
		{Label: "soil", Fraction: 0.25},
		{Label: "ocean", Fraction: 0.75},
	})
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !q.IsTracking() {
		t.Error("expected composed quantity to track")
	}

	shares, err := q.Shares()
	if err != nil {
		t.Fatalf("Shares failed: %v", err)
	}
	want := []Share{{"soil", 0.25}, {"ocean", 0.75}}
	if diff := cmp.Diff(want, shares); diff != "" {
		t.Errorf("shares mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_Errors(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		shares []Share
		want   error
	}{
		{
			name:   "does not sum to one",
			total:  1,
			shares: []Share{{"a", 0.5}, {"b", 0.4}},
			want:   ErrInvariantViolation,
		},
		{
			name:   "empty with nonzero total",
			total:  1,
			shares: nil,
			want:   ErrInvariantViolation,
		},
		{
			name:   "nan fraction",
			total:  1,
			shares: []Share{{"a", math.NaN()}},
			want:   ErrInvariantViolation,
		},
		{
			name:   "duplicate label",
			total:  1,
			shares: []Share{{"a", 0.5}, {"a", 0.5}},
			want:   ErrDuplicateLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(pgc(tt.total), tt.shares)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCompose_ZeroTotalSkipsCheck(t *testing.T) {
	if _, err := Compose(pgc(0), []Share{{"a", 0.2}}); err != nil {
		t.Errorf("expected zero total to skip the sum check, got %v", err)
	}
}

func TestCompose_WithinTolerance(t *testing.T) {
	shares := []Share{{"a", 0.1}, {"b", 0.2}, {"c", 0.7 + Tolerance/2}}
	if _, err := Compose(pgc(1), shares); err != nil {
		t.Errorf("expected sum within tolerance to pass, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	x := tracked(1, "x")

	t.Run("same value", func(t *testing.T) {
		if !x.Equal(tracked(1, "x")) {
			t.Error("expected equal")
		}
	})

	t.Run("different total", func(t *testing.T) {
		if x.Equal(tracked(2, "x")) {
			t.Error("expected totals to differ")
		}
	})

	t.Run("different tracking", func(t *testing.T) {
		if x.Equal(New(pgc(1), "x")) {
			t.Error("expected tracking flags to differ")
		}
	})

	t.Run("different sources", func(t *testing.T) {
		if x.Equal(tracked(1, "y")) {
			t.Error("expected source sets to differ")
		}
	})

	t.Run("untracked ignores sources", func(t *testing.T) {
		if !New(pgc(1), "x").Equal(New(pgc(1), "y")) {
			t.Error("expected untracked quantities with equal totals to be equal")
		}
	})

	t.Run("different fractions", func(t *testing.T) {
		a, _ := Compose(pgc(1), []Share{{"x", 0.5}, {"y", 0.5}})
		b, _ := Compose(pgc(1), []Share{{"x", 0.25}, {"y", 0.75}})
		if a.Equal(b) {
			t.Error("expected fractions to differ")
		}
	})

	t.Run("order ignored", func(t *testing.T) {
		a, _ := Compose(pgc(1), []Share{{"x", 0.5}, {"y", 0.5}})
		b, _ := Compose(pgc(1), []Share{{"y", 0.5}, {"x", 0.5}})
		if !a.Equal(b) {
			t.Error("expected label order not to matter")
		}
	})
}

func TestString(t *testing.T) {
	z, err := tracked(10, "x").Add(tracked(30, "y"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	want := "40 Pg C\n\tx: 0.25\n\ty: 0.75"
	if got := z.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestString_Untracked(t *testing.T) {
	s := New(pgc(10), "x").String()
	if strings.Contains(s, "x:") {
		t.Errorf("expected no source lines, got %q", s)
	}
}
