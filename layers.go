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

// layerMask returns a 0/1 membership mask over H for layer i.
// Layer i owns geopotential heights in [baseHeight(i), baseHeight(i+1)).
// Heights below the first base belong to the first layer and heights at
// or above the last base belong to the last layer, so every finite
// height belongs to exactly one layer.
func layerMask(H *sparse.DenseArray, i int) *sparse.DenseArray {
	mask := sparse.ZerosDense(H.Shape...)
	lo := layers[i].baseHeight
	last := i == len(layers)-1
	var hi float64
	if !last {
		hi = layers[i+1].baseHeight
	}
	for j, h := range H.Elements {
		var in bool
		switch {
		case i == 0:
			in = h < hi
		case last:
			in = h >= lo
		default:
			in = h >= lo && h < hi
		}
		if in {
			mask.Elements[j] = 1
		}
	}
	return mask
}

// resolveLayers maps each geopotential height in H to the index of the
// layer containing it. The index is accumulated as Σ maskᵢ·i over all
// layers; the masks partition the height axis, so each element receives
// exactly one contribution. The result is always a valid index for any
// finite height; out-of-range heights are rejected during input
// validation, not here.
func resolveLayers(H *sparse.DenseArray) *sparse.DenseArrayInt {
	index := sparse.ZerosDenseInt(H.Shape...)
	for i := range layers {
		mask := layerMask(H, i)
		for j, m := range mask.Elements {
			index.Elements[j] += i * int(m)
		}
	}
	return index
}

// layerParams broadcasts the layer table to the shape of the input:
// element j of each returned array holds the base geopotential height,
// base temperature, lapse rate and base pressure of the layer resolved
// for element j.
func layerParams(index *sparse.DenseArrayInt) (baseHeight, baseTemp, lapseRate, basePressure *sparse.DenseArray) {
	baseHeight = sparse.ZerosDense(index.Shape...)
	baseTemp = sparse.ZerosDense(index.Shape...)
	lapseRate = sparse.ZerosDense(index.Shape...)
	basePressure = sparse.ZerosDense(index.Shape...)
	for j, i := range index.Elements {
		l := layers[i]
		baseHeight.Elements[j] = l.baseHeight
		baseTemp.Elements[j] = l.baseTemp
		lapseRate.Elements[j] = l.lapseRate
		basePressure.Elements[j] = l.basePressure
	}
	return baseHeight, baseTemp, lapseRate, basePressure
}

// resolveLayer is the scalar form of resolveLayers, used by the
// unvalidated scalar evaluators that back bounds derivation and
// Newton iteration.
func resolveLayer(H float64) int {
	i := 0
	for k := 1; k < len(layers); k++ {
		if H >= layers[k].baseHeight {
			i = k
		}
	}
	return i
}
