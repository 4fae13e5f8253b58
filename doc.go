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

// Package ambiance computes atmospheric properties for geometric
// heights between -5004 m and 81020 m, following the ICAO standard
// atmosphere (Doc 7488, 1993, extended to 80 km geopotential height).
//
// All input and output uses SI units. Heights are geometric unless
// noted otherwise; the layer equations operate internally on
// geopotential height. Input heights are given as a
// github.com/ctessum/sparse DenseArray of any shape, and every
// property accessor returns an array of the same shape:
//
//	a, err := ambiance.NewSlice([]float64{0, 1000, 5000})
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := a.Pressure() // [101325, 89876.3, 54048.3] Pa
//
// Heights can also be recovered from target pressures or densities:
//
//	a, err := ambiance.FromPressureSlice([]float64{101325})
//	// a.Height() ≈ [0] m
//
// An Atmosphere is immutable after construction and safe for
// concurrent use.
package ambiance
