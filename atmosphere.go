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
	"sync"

	"github.com/ctessum/sparse"
)

// Atmosphere is an immutable snapshot of the standard atmosphere
// evaluated at a set of geometric heights. It owns its derived
// geopotential-height and layer-index arrays; heights cannot be
// reassigned after construction, and every property accessor is a pure
// function of the constructed state, so an Atmosphere is safe for
// concurrent use.
type Atmosphere struct {
	h          *sparse.DenseArray    // geometric heights [m]
	geopHeight *sparse.DenseArray    // geopotential heights [m]
	layerIndex *sparse.DenseArrayInt // one layer index per height

	mu   sync.Mutex
	memo map[Property]*sparse.DenseArray
}

// New creates an Atmosphere from an array of geometric heights in
// metres. The array may have any shape; all property accessors return
// arrays of the same shape. New returns an error wrapping
// ErrInvalidInput if h is nil or empty, or wrapping ErrOutOfBounds if
// any element lies outside [HeightMin, HeightMax] (a tolerance of
// 1e-9 m absorbs floating round-off at the boundaries). The input is
// copied; later modification of h does not affect the result.
func New(h *sparse.DenseArray) (*Atmosphere, error) {
	if h == nil || len(h.Elements) == 0 || len(h.Shape) == 0 {
		return nil, fmt.Errorf("ambiance: nil or empty height array: %w", ErrInvalidInput)
	}
	hh := sparse.ZerosDense(h.Shape...)
	if len(h.Elements) != len(hh.Elements) {
		return nil, fmt.Errorf("ambiance: height array has %d elements but shape %v: %w",
			len(h.Elements), h.Shape, ErrInvalidInput)
	}
	copy(hh.Elements, h.Elements)
	for _, v := range hh.Elements {
		if math.IsNaN(v) || v < HeightMin-heightTolerance || v > HeightMax+heightTolerance {
			return nil, fmt.Errorf("ambiance: height %g m outside [%g m, %g m]: %w",
				v, float64(HeightMin), float64(HeightMax), ErrOutOfBounds)
		}
	}
	return newUnchecked(hh), nil
}

// NewSlice creates an Atmosphere from a flat sequence of geometric
// heights in metres.
func NewSlice(h []float64) (*Atmosphere, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("ambiance: empty height slice: %w", ErrInvalidInput)
	}
	arr := sparse.ZerosDense(len(h))
	copy(arr.Elements, h)
	return New(arr)
}

// NewScalar creates an Atmosphere from a single geometric height in
// metres. The property accessors return length-1 arrays.
func NewScalar(h float64) (*Atmosphere, error) {
	return NewSlice([]float64{h})
}

// newUnchecked builds the derived state from already-validated heights.
// The inversion also uses it directly, because Newton iterates may
// land a converged height a round-off step beyond the formal bounds.
func newUnchecked(h *sparse.DenseArray) *Atmosphere {
	H := Geom2GeopDense(h)
	return &Atmosphere{
		h:          h,
		geopHeight: H,
		layerIndex: resolveLayers(H),
		memo:       make(map[Property]*sparse.DenseArray),
	}
}

func (a *Atmosphere) String() string {
	return fmt.Sprintf("Atmosphere(%v)", a.h.Elements)
}

// Height returns a copy of the geometric heights [m] the Atmosphere
// was created from.
func (a *Atmosphere) Height() *sparse.DenseArray {
	return a.h.Copy()
}

// GeopotentialHeight returns the geopotential heights [m]
// corresponding to the geometric heights.
func (a *Atmosphere) GeopotentialHeight() *sparse.DenseArray {
	return a.geopHeight.Copy()
}

// LayerName returns the name of the atmospheric layer containing each
// height. The slice is in row-major order, aligned with the Elements
// of the arrays returned by the property accessors.
func (a *Atmosphere) LayerName() []string {
	names := make([]string, len(a.layerIndex.Elements))
	for j, i := range a.layerIndex.Elements {
		names[j] = layers[i].name
	}
	return names
}

// Temperature returns the air temperature [K].
func (a *Atmosphere) Temperature() *sparse.DenseArray {
	return a.Get(Temperature)
}

// TemperatureInCelsius returns the air temperature [degC].
func (a *Atmosphere) TemperatureInCelsius() *sparse.DenseArray {
	return a.Get(TemperatureInCelsius)
}

// Pressure returns the air pressure [Pa].
func (a *Atmosphere) Pressure() *sparse.DenseArray {
	return a.Get(Pressure)
}

// Density returns the air density [kg/m³].
func (a *Atmosphere) Density() *sparse.DenseArray {
	return a.Get(Density)
}

// GravAccel returns the gravitational acceleration [m/s²].
func (a *Atmosphere) GravAccel() *sparse.DenseArray {
	return a.Get(GravAccel)
}

// SpeedOfSound returns the speed of sound [m/s].
func (a *Atmosphere) SpeedOfSound() *sparse.DenseArray {
	return a.Get(SpeedOfSound)
}

// DynamicViscosity returns the dynamic viscosity [kg/(m·s)].
func (a *Atmosphere) DynamicViscosity() *sparse.DenseArray {
	return a.Get(DynamicViscosity)
}

// KinematicViscosity returns the kinematic viscosity [m²/s].
func (a *Atmosphere) KinematicViscosity() *sparse.DenseArray {
	return a.Get(KinematicViscosity)
}

// ThermalConductivity returns the thermal conductivity [W/(m·K)].
func (a *Atmosphere) ThermalConductivity() *sparse.DenseArray {
	return a.Get(ThermalConductivity)
}

// PressureScaleHeight returns the pressure scale height [m].
func (a *Atmosphere) PressureScaleHeight() *sparse.DenseArray {
	return a.Get(PressureScaleHeight)
}

// SpecificWeight returns the specific weight [N/m³].
func (a *Atmosphere) SpecificWeight() *sparse.DenseArray {
	return a.Get(SpecificWeight)
}

// NumberDensity returns the number density [1/m³].
func (a *Atmosphere) NumberDensity() *sparse.DenseArray {
	return a.Get(NumberDensity)
}

// MeanParticleSpeed returns the mean air particle speed [m/s].
func (a *Atmosphere) MeanParticleSpeed() *sparse.DenseArray {
	return a.Get(MeanParticleSpeed)
}

// CollisionFrequency returns the air particle collision frequency [1/s].
func (a *Atmosphere) CollisionFrequency() *sparse.DenseArray {
	return a.Get(CollisionFrequency)
}

// MeanFreePath returns the mean free path of air particles [m].
func (a *Atmosphere) MeanFreePath() *sparse.DenseArray {
	return a.Get(MeanFreePath)
}
