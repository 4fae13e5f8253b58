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

// Property identifies one of the atmospheric properties computed by
// this package. The set is a closed enumeration so that dispatch over
// properties (for example when tabulating or plotting all of them) can
// be checked for exhaustiveness.
type Property int

// The atmospheric properties, in the order they appear in the ICAO
// tables.
const (
	Temperature Property = iota
	TemperatureInCelsius
	Pressure
	Density
	GravAccel
	SpeedOfSound
	DynamicViscosity
	KinematicViscosity
	ThermalConductivity
	PressureScaleHeight
	SpecificWeight
	NumberDensity
	MeanParticleSpeed
	CollisionFrequency
	MeanFreePath
	numProperties // must be last
)

// Properties returns all properties in table order.
func Properties() []Property {
	ps := make([]Property, numProperties)
	for i := range ps {
		ps[i] = Property(i)
	}
	return ps
}

var propertyNames = [numProperties]string{
	Temperature:          "temperature",
	TemperatureInCelsius: "temperature_in_celsius",
	Pressure:             "pressure",
	Density:              "density",
	GravAccel:            "grav_accel",
	SpeedOfSound:         "speed_of_sound",
	DynamicViscosity:     "dynamic_viscosity",
	KinematicViscosity:   "kinematic_viscosity",
	ThermalConductivity:  "thermal_conductivity",
	PressureScaleHeight:  "pressure_scale_height",
	SpecificWeight:       "specific_weight",
	NumberDensity:        "number_density",
	MeanParticleSpeed:    "mean_particle_speed",
	CollisionFrequency:   "collision_frequency",
	MeanFreePath:         "mean_free_path",
}

var propertyUnits = [numProperties]string{
	Temperature:          "K",
	TemperatureInCelsius: "degC",
	Pressure:             "Pa",
	Density:              "kg/m^3",
	GravAccel:            "m/s^2",
	SpeedOfSound:         "m/s",
	DynamicViscosity:     "kg/(m*s)",
	KinematicViscosity:   "m^2/s",
	ThermalConductivity:  "W/(m*K)",
	PressureScaleHeight:  "m",
	SpecificWeight:       "N/m^3",
	NumberDensity:        "1/m^3",
	MeanParticleSpeed:    "m/s",
	CollisionFrequency:   "1/s",
	MeanFreePath:         "m",
}

func (p Property) String() string {
	if p < 0 || p >= numProperties {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

// Units returns the SI units of the property.
func (p Property) Units() string {
	if p < 0 || p >= numProperties {
		return ""
	}
	return propertyUnits[p]
}

// ParseProperty returns the property with the given name, as reported
// by Property.String.
func ParseProperty(name string) (Property, error) {
	for i, n := range propertyNames {
		if n == name {
			return Property(i), nil
		}
	}
	return 0, fmt.Errorf("ambiance: unknown property %q: %w", name, ErrInvalidInput)
}

// Get returns the requested property, evaluated at every height in the
// Atmosphere. The result has the same shape as the height array the
// Atmosphere was created from. Results are memoized, so repeated access
// to the same property is cheap; the returned array is a copy that the
// caller may freely modify.
func (a *Atmosphere) Get(p Property) *sparse.DenseArray {
	a.mu.Lock()
	defer a.mu.Unlock()
	if cached, ok := a.memo[p]; ok {
		return cached.Copy()
	}
	out := a.compute(p)
	a.memo[p] = out
	return out.Copy()
}

// compute evaluates property p from the validated state. It must be
// called with a.mu held. Every branch is a pure closed-form function of
// the temperature, pressure, height and constants; none re-validates or
// mutates the state.
func (a *Atmosphere) compute(p Property) *sparse.DenseArray {
	switch p {
	case Temperature:
		return a.temperature()
	case TemperatureInCelsius:
		return Kelvin2CelsiusDense(a.get(Temperature))
	case Pressure:
		return a.pressure()
	case Density:
		return a.density()
	case GravAccel:
		return apply(a.h, gravAccelAtHeight)
	case SpeedOfSound:
		return apply(a.get(Temperature), func(T float64) float64 {
			return math.Sqrt(Kappa * R * T)
		})
	case DynamicViscosity:
		return apply(a.get(Temperature), dynamicViscosity)
	case KinematicViscosity:
		return a.ratio(DynamicViscosity, Density)
	case ThermalConductivity:
		return apply(a.get(Temperature), thermalConductivity)
	case PressureScaleHeight:
		return a.ratio(Temperature, GravAccel, R)
	case SpecificWeight:
		return a.product(Density, GravAccel)
	case NumberDensity:
		return a.ratio(Pressure, Temperature, NA/RStar)
	case MeanParticleSpeed:
		return apply(a.get(Temperature), func(T float64) float64 {
			return math.Sqrt(8 / math.Pi * R * T)
		})
	case CollisionFrequency:
		return a.collisionFrequency()
	case MeanFreePath:
		return apply(a.get(NumberDensity), func(n float64) float64 {
			return 1 / (math.Sqrt2 * math.Pi * Sigma * Sigma * n)
		})
	default:
		panic(fmt.Sprintf("ambiance: unknown property %d", int(p)))
	}
}

// get is the memoizing accessor for internal use while a.mu is held.
func (a *Atmosphere) get(p Property) *sparse.DenseArray {
	if cached, ok := a.memo[p]; ok {
		return cached
	}
	out := a.compute(p)
	a.memo[p] = out
	return out
}

// temperature computes T = T_b + β·(H - H_b) element-wise.
func (a *Atmosphere) temperature() *sparse.DenseArray {
	T := sparse.ZerosDense(a.h.Shape...)
	for j := range T.Elements {
		l := layers[a.layerIndex.Elements[j]]
		T.Elements[j] = l.baseTemp + l.lapseRate*(a.geopHeight.Elements[j]-l.baseHeight)
	}
	return T
}

// pressure computes the air pressure element-wise. The isothermal
// (β == 0) exponential law and the gradient (β != 0) power law are both
// evaluated over the entire array and combined through complementary
// 0/1 masks, so a single call handles a batch whose elements span
// layers with different lapse rates. The lapse rate is substituted with
// a safe nonzero placeholder in the power-law exponent where β == 0;
// the mask zeroes that branch out, and the substitution only prevents a
// division-by-zero artifact from contaminating the sum.
func (a *Atmosphere) pressure() *sparse.DenseArray {
	T := a.get(Temperature)
	baseHeight, baseTemp, lapseRate, basePressure := layerParams(a.layerIndex)

	p := sparse.ZerosDense(a.h.Shape...)
	for j := range p.Elements {
		dH := a.geopHeight.Elements[j] - baseHeight.Elements[j]
		pb := basePressure.Elements[j]
		beta := lapseRate.Elements[j]

		maskIso, maskGrad, safeBeta := 0.0, 1.0, beta
		if beta == 0 {
			maskIso, maskGrad, safeBeta = 1, 0, 1
		}

		pIso := pb * math.Exp(-G0/(R*T.Elements[j])*dH)
		pGrad := pb * math.Pow(1+beta/baseTemp.Elements[j]*dH, -G0/(R*safeBeta))

		p.Elements[j] = pIso*maskIso + pGrad*maskGrad
	}
	return p
}

// density computes ρ = p/(R·T) element-wise.
func (a *Atmosphere) density() *sparse.DenseArray {
	return a.ratio(Pressure, Temperature, 1/R)
}

// collisionFrequency computes ω = 4·σ²·N_A·√(π/(R*·M₀))·p/√T.
func (a *Atmosphere) collisionFrequency() *sparse.DenseArray {
	const factor = 4 * Sigma * Sigma * NA
	p := a.get(Pressure)
	T := a.get(Temperature)
	out := sparse.ZerosDense(a.h.Shape...)
	for j := range out.Elements {
		out.Elements[j] = factor * math.Sqrt(math.Pi/(RStar*M0)) *
			p.Elements[j] / math.Sqrt(T.Elements[j])
	}
	return out
}

// ratio computes scale·num/den element-wise; scale defaults to 1.
func (a *Atmosphere) ratio(num, den Property, scale ...float64) *sparse.DenseArray {
	s := 1.0
	if len(scale) > 0 {
		s = scale[0]
	}
	n := a.get(num)
	d := a.get(den)
	out := sparse.ZerosDense(a.h.Shape...)
	for j := range out.Elements {
		out.Elements[j] = s * n.Elements[j] / d.Elements[j]
	}
	return out
}

// product computes x·y element-wise.
func (a *Atmosphere) product(x, y Property) *sparse.DenseArray {
	xs := a.get(x)
	ys := a.get(y)
	out := sparse.ZerosDense(a.h.Shape...)
	for j := range out.Elements {
		out.Elements[j] = xs.Elements[j] * ys.Elements[j]
	}
	return out
}

// dynamicViscosity is Sutherland's law μ(T).
func dynamicViscosity(T float64) float64 {
	return SutherlandBeta * math.Pow(T, 1.5) / (T + SutherlandS)
}

// thermalConductivity is the empirical ICAO relation λ(T).
func thermalConductivity(T float64) float64 {
	return 2.648151e-3 * math.Pow(T, 1.5) / (T + 245.4*math.Pow(10, -12/T))
}

// gravAccelAtHeight computes g = g₀·(r/(r+h))² for geometric height h.
func gravAccelAtHeight(h float64) float64 {
	f := EarthRadius / (EarthRadius + h)
	return G0 * f * f
}

// The scalar evaluators below back the derived bounds in the constant
// table and the Newton iteration in the height inversion. They apply
// the same per-layer closed forms as the tensor evaluators but perform
// no validation, because the inversion must be free to transiently
// evaluate heights outside the valid range.

// temperatureAtHeight computes the temperature at geometric height h.
func temperatureAtHeight(h float64) float64 {
	H := Geom2Geop(h)
	l := layers[resolveLayer(H)]
	return l.baseTemp + l.lapseRate*(H-l.baseHeight)
}

// pressureAtHeight computes the pressure at geometric height h.
func pressureAtHeight(h float64) float64 {
	H := Geom2Geop(h)
	l := layers[resolveLayer(H)]
	dH := H - l.baseHeight
	T := l.baseTemp + l.lapseRate*dH
	if l.lapseRate == 0 {
		return l.basePressure * math.Exp(-G0/(R*T)*dH)
	}
	return l.basePressure * math.Pow(1+l.lapseRate/l.baseTemp*dH, -G0/(R*l.lapseRate))
}

// densityAtHeight computes the density at geometric height h.
func densityAtHeight(h float64) float64 {
	return pressureAtHeight(h) / (R * temperatureAtHeight(h))
}

// logLinearFit fits h = intercept + slope·log10(v) through the two
// support points (v1, h1) and (v2, h2).
func logLinearFit(v1, h1, v2, h2 float64) (slope, intercept float64) {
	slope = (h2 - h1) / (math.Log10(v2) - math.Log10(v1))
	intercept = h1 - slope*math.Log10(v1)
	return slope, intercept
}
