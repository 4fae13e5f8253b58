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

import "github.com/ctessum/sparse"

// Geom2Geop converts geometric height h to geopotential height [m].
func Geom2Geop(h float64) float64 {
	return EarthRadius * h / (EarthRadius + h)
}

// Geop2Geom converts geopotential height H to geometric height [m].
func Geop2Geom(H float64) float64 {
	return EarthRadius * H / (EarthRadius - H)
}

// Kelvin2Celsius converts temperature T in Kelvin to degrees Celsius.
func Kelvin2Celsius(T float64) float64 {
	return T - TIce
}

// Celsius2Kelvin converts temperature t in degrees Celsius to Kelvin.
func Celsius2Kelvin(t float64) float64 {
	return t + TIce
}

// apply returns a new array of the same shape as a with f applied to
// every element.
func apply(a *sparse.DenseArray, f func(float64) float64) *sparse.DenseArray {
	out := sparse.ZerosDense(a.Shape...)
	for j, v := range a.Elements {
		out.Elements[j] = f(v)
	}
	return out
}

// Geom2GeopDense is the shape-preserving tensor form of Geom2Geop.
func Geom2GeopDense(h *sparse.DenseArray) *sparse.DenseArray {
	return apply(h, Geom2Geop)
}

// Geop2GeomDense is the shape-preserving tensor form of Geop2Geom.
func Geop2GeomDense(H *sparse.DenseArray) *sparse.DenseArray {
	return apply(H, Geop2Geom)
}

// Kelvin2CelsiusDense is the shape-preserving tensor form of Kelvin2Celsius.
func Kelvin2CelsiusDense(T *sparse.DenseArray) *sparse.DenseArray {
	return apply(T, Kelvin2Celsius)
}

// Celsius2KelvinDense is the shape-preserving tensor form of Celsius2Kelvin.
func Celsius2KelvinDense(t *sparse.DenseArray) *sparse.DenseArray {
	return apply(t, Celsius2Kelvin)
}
