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
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

const (
	// newtonTol is the convergence tolerance on the log10 residual.
	// A residual of 2e-14 corresponds to a height error below 1e-9 m
	// everywhere in the valid range.
	newtonTol = 2e-14

	// newtonMaxIter bounds the Newton iteration. Convergence normally
	// takes fewer than ten steps from the log-linear initial guess.
	newtonMaxIter = 30

	// boundsTolerance is the relative tolerance applied when
	// validating pressure and density targets against the derived
	// bounds.
	boundsTolerance = 1e-9

	ln10 = math.Ln10
)

// FromPressure creates an Atmosphere whose heights reproduce the given
// pressures [Pa]. Each element of p must lie within
// [PressureMin, PressureMax]; the heights are recovered independently
// per element by Newton iteration on the residual
// log10(target/computed). FromPressure returns an error wrapping
// ErrOutOfBounds for targets outside the valid pressure range, and an
// error wrapping ErrNoConvergence if any element fails to meet the
// tolerance within the iteration budget.
func FromPressure(p *sparse.DenseArray) (*Atmosphere, error) {
	return invertProperty(p, "pressure", "Pa", PressureMin, PressureMax,
		pressureGuessSlope, pressureGuessIntercept,
		pressureAtHeight, dLog10PressureDh)
}

// FromDensity creates an Atmosphere whose heights reproduce the given
// densities [kg/m³]. See FromPressure for the error contract.
func FromDensity(rho *sparse.DenseArray) (*Atmosphere, error) {
	return invertProperty(rho, "density", "kg/m^3", DensityMin, DensityMax,
		densityGuessSlope, densityGuessIntercept,
		densityAtHeight, dLog10DensityDh)
}

// FromPressureSlice is the flat-sequence form of FromPressure.
func FromPressureSlice(p []float64) (*Atmosphere, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("ambiance: empty pressure slice: %w", ErrInvalidInput)
	}
	arr := sparse.ZerosDense(len(p))
	copy(arr.Elements, p)
	return FromPressure(arr)
}

// FromDensitySlice is the flat-sequence form of FromDensity.
func FromDensitySlice(rho []float64) (*Atmosphere, error) {
	if len(rho) == 0 {
		return nil, fmt.Errorf("ambiance: empty density slice: %w", ErrInvalidInput)
	}
	arr := sparse.ZerosDense(len(rho))
	copy(arr.Elements, rho)
	return FromDensity(arr)
}

// invertProperty recovers a height array from target property values
// and builds the resulting Atmosphere. Validation happens here, once;
// the Newton iteration itself evaluates heights without validation
// because intermediate iterates may transiently overshoot the valid
// height range.
func invertProperty(target *sparse.DenseArray, name, units string,
	min, max, guessSlope, guessIntercept float64,
	value, dLog10Dh func(float64) float64) (*Atmosphere, error) {

	if target == nil || len(target.Elements) == 0 || len(target.Shape) == 0 {
		return nil, fmt.Errorf("ambiance: nil or empty %s array: %w", name, ErrInvalidInput)
	}
	h := sparse.ZerosDense(target.Shape...)
	if len(target.Elements) != len(h.Elements) {
		return nil, fmt.Errorf("ambiance: %s array has %d elements but shape %v: %w",
			name, len(target.Elements), target.Shape, ErrInvalidInput)
	}
	for _, v := range target.Elements {
		if math.IsNaN(v) || v < min*(1-boundsTolerance) || v > max*(1+boundsTolerance) {
			return nil, fmt.Errorf("ambiance: %s %g %s outside [%g %s, %g %s]: %w",
				name, v, units, min, units, max, units, ErrOutOfBounds)
		}
	}

	for j, v := range target.Elements {
		hj, err := newton(v, guessSlope, guessIntercept, value, dLog10Dh)
		if err != nil {
			return nil, fmt.Errorf("ambiance: inverting %s %g %s: %w", name, v, units, err)
		}
		h.Elements[j] = hj
	}
	return newUnchecked(h), nil
}

// newton solves value(h) == target for h by Newton-Raphson iteration
// in log space: the residual log10(target/value(h)) varies near
// linearly with height across the many orders of magnitude the target
// spans, and its height derivative is known in closed form. The
// iteration is an explicit bounded loop; exhausting the budget without
// meeting the tolerance is reported as an error, never as a silently
// non-converged result.
func newton(target, guessSlope, guessIntercept float64,
	value, dLog10Dh func(float64) float64) (float64, error) {

	h := guessIntercept + guessSlope*math.Log10(target)
	for i := 0; i < newtonMaxIter; i++ {
		res := math.Log10(target / value(h))
		if math.Abs(res) < newtonTol {
			// Converged heights can sit a round-off step outside the
			// formal height bounds when the target sits on a pressure
			// or density bound.
			return clampHeight(h), nil
		}
		h += res / dLog10Dh(h)
	}
	return 0, fmt.Errorf("residual still above %g after %d iterations: %w",
		newtonTol, newtonMaxIter, ErrNoConvergence)
}

func clampHeight(h float64) float64 {
	return math.Min(math.Max(h, HeightMin), HeightMax)
}

// dLog10PressureDh is the height derivative of log10(p) from the
// hydrostatic relation: d ln p/dH = -g₀/(R·T), converted to geometric
// height through dH/dh = (r/(r+h))².
func dLog10PressureDh(h float64) float64 {
	T := temperatureAtHeight(h)
	return -gravAccelAtHeight(h) / (R * T * ln10)
}

// dLog10DensityDh adds the lapse-rate term from ρ = p/(R·T):
// d ln ρ/dh = d ln p/dh - β/T·dH/dh.
func dLog10DensityDh(h float64) float64 {
	T := temperatureAtHeight(h)
	beta := layers[resolveLayer(Geom2Geop(h))].lapseRate
	f := EarthRadius / (EarthRadius + h)
	return (-gravAccelAtHeight(h)/R - beta*f*f) / (T * ln10)
}
