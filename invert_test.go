/*
Copyright © 2019 the Ambiance authors.
This file is part of Ambiance.

Ambiance is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Ambiance is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Ambiance.  If not, see <http://www.gnu.org/licenses/>.
*/

package ambiance

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ctessum/sparse"
)

func TestDerivedBounds(t *testing.T) {
	const tol = 1e-4
	if different(PressureMax, 177837.4, tol) {
		t.Errorf("PressureMax: got %g, want 177837.4", PressureMax)
	}
	if different(PressureMin, 0.886217, tol) {
		t.Errorf("PressureMin: got %g, want 0.886217", PressureMin)
	}
	if different(DensityMax, 1.931791, tol) {
		t.Errorf("DensityMax: got %g, want 1.931791", DensityMax)
	}
	if different(DensityMin, 1.56995e-5, tol) {
		t.Errorf("DensityMin: got %g, want 1.56995e-5", DensityMin)
	}
}

func TestPressureRoundTrip(t *testing.T) {
	const tol = 1e-9 // absolute, metres

	var heights []float64
	for h := float64(HeightMin); h <= HeightMax; h += 913.7 {
		heights = append(heights, h)
	}
	heights = append(heights, HeightMin, 0, 11000, HeightMax)

	a, err := NewSlice(heights)
	if err != nil {
		t.Fatal(err)
	}
	inverted, err := FromPressure(a.Pressure())
	if err != nil {
		t.Fatal(err)
	}
	got := inverted.Height()
	for j, h := range heights {
		if absDifferent(got.Elements[j], h, tol) {
			t.Errorf("round trip at %g m: got %g m (error %g m)",
				h, got.Elements[j], got.Elements[j]-h)
		}
	}
}

func TestDensityRoundTrip(t *testing.T) {
	const tol = 1e-9 // absolute, metres

	var heights []float64
	for h := float64(HeightMin); h <= HeightMax; h += 1211.3 {
		heights = append(heights, h)
	}
	heights = append(heights, HeightMin, 0, 47000, HeightMax)

	a, err := NewSlice(heights)
	if err != nil {
		t.Fatal(err)
	}
	inverted, err := FromDensity(a.Density())
	if err != nil {
		t.Fatal(err)
	}
	got := inverted.Height()
	for j, h := range heights {
		if absDifferent(got.Elements[j], h, tol) {
			t.Errorf("round trip at %g m: got %g m (error %g m)",
				h, got.Elements[j], got.Elements[j]-h)
		}
	}
}

func TestInversionShapePreserved(t *testing.T) {
	p := sparse.ZerosDense(2, 3)
	for j, h := range []float64{-5000, 0, 8000, 25000, 50000, 80000} {
		p.Elements[j] = pressureAtHeight(h)
	}
	a, err := FromPressure(p)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Height().Shape, []int{2, 3}) {
		t.Errorf("inverted height shape: got %v, want [2 3]", a.Height().Shape)
	}
}

func TestInversionBounds(t *testing.T) {
	// Exact bounds invert without error.
	for _, p := range []float64{PressureMin, PressureMax} {
		if _, err := FromPressureSlice([]float64{p}); err != nil {
			t.Errorf("pressure %g Pa: unexpected error %v", p, err)
		}
	}
	for _, rho := range []float64{DensityMin, DensityMax} {
		if _, err := FromDensitySlice([]float64{rho}); err != nil {
			t.Errorf("density %g kg/m³: unexpected error %v", rho, err)
		}
	}

	// Out-of-range targets are rejected before any iteration.
	badPressures := []float64{0, -1, PressureMin * 0.99, PressureMax * 1.01, math.NaN()}
	for _, p := range badPressures {
		_, err := FromPressureSlice([]float64{p})
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("pressure %g Pa: got %v, want ErrOutOfBounds", p, err)
		}
	}
	badDensities := []float64{0, -1, DensityMin * 0.99, DensityMax * 1.01}
	for _, rho := range badDensities {
		_, err := FromDensitySlice([]float64{rho})
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("density %g kg/m³: got %v, want ErrOutOfBounds", rho, err)
		}
	}

	if _, err := FromPressure(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil pressure input: got %v, want ErrInvalidInput", err)
	}
	if _, err := FromDensitySlice(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil density input: got %v, want ErrInvalidInput", err)
	}
}

func TestInvertedHeightsWithinBounds(t *testing.T) {
	// Targets on the bounds must invert to heights the validating
	// constructor would also accept.
	a, err := FromPressureSlice([]float64{PressureMax, PressureMin})
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range a.Height().Elements {
		if h < HeightMin-heightTolerance || h > HeightMax+heightTolerance {
			t.Errorf("inverted height %g m outside valid range", h)
		}
	}
}

func TestInitialGuessQuality(t *testing.T) {
	// The log-linear guess should land within a few kilometres of the
	// true height everywhere; Newton handles the rest.
	for h := float64(HeightMin); h <= HeightMax; h += 2000 {
		p := pressureAtHeight(h)
		guess := pressureGuessIntercept + pressureGuessSlope*math.Log10(p)
		if math.Abs(guess-h) > 5000 {
			t.Errorf("initial guess at %g m is off by %g m", h, guess-h)
		}
	}
}

func TestNewtonDerivatives(t *testing.T) {
	// Analytic height derivatives of log10(p) and log10(ρ) should
	// match central finite differences.
	const (
		dh  = 0.5
		tol = 1e-6
	)
	for _, h := range []float64{-4000, 0, 5000, 15000, 25000, 40000, 49000, 60000, 78000} {
		want := (math.Log10(pressureAtHeight(h+dh)) - math.Log10(pressureAtHeight(h-dh))) / (2 * dh)
		if got := dLog10PressureDh(h); different(got, want, tol) {
			t.Errorf("dlog10(p)/dh at %g m: got %g, want %g", h, got, want)
		}
		want = (math.Log10(densityAtHeight(h+dh)) - math.Log10(densityAtHeight(h-dh))) / (2 * dh)
		if got := dLog10DensityDh(h); different(got, want, tol) {
			t.Errorf("dlog10(ρ)/dh at %g m: got %g, want %g", h, got, want)
		}
	}
}
