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
	"testing"

	"github.com/ctessum/sparse"
)

func TestLayerTable(t *testing.T) {
	if len(layers) != 9 {
		t.Fatalf("layer table rows: got %d, want 9", len(layers))
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].baseHeight <= layers[i-1].baseHeight {
			t.Errorf("base heights not strictly increasing at row %d", i)
		}
	}
}

func TestResolveLayerBoundaries(t *testing.T) {
	cases := []struct {
		H    float64 // geopotential height [m]
		want int
		name string
	}{
		// A layer base belongs to the layer above it, not below.
		{11000, 2, "tropopause"},
		{11000 - 1e-9, 1, "troposphere"},
		{0, 1, "troposphere"},
		{-1e-9, 0, "troposphere"},
		{20000, 3, "stratosphere"},
		{32000, 4, "stratosphere"},
		{47000, 5, "stratopause"},
		{51000, 6, "mesosphere"},
		{71000, 7, "mesosphere"},
		{80000, 8, "mesosphere"},
		// Heights below the first base resolve to the first layer and
		// heights above the last base to the last layer.
		{-5000, 0, "troposphere"},
		{-5100, 0, "troposphere"},
		{85000, 8, "mesosphere"},
	}
	for _, c := range cases {
		if got := resolveLayer(c.H); got != c.want {
			t.Errorf("resolveLayer(%g): got %d, want %d", c.H, got, c.want)
		}
		if got := layers[resolveLayer(c.H)].name; got != c.name {
			t.Errorf("layer name at %g m: got %q, want %q", c.H, got, c.name)
		}
	}

	// The vectorized resolver must agree with the scalar one.
	H := sparse.ZerosDense(len(cases))
	for j, c := range cases {
		H.Elements[j] = c.H
	}
	index := resolveLayers(H)
	for j, c := range cases {
		if index.Elements[j] != c.want {
			t.Errorf("resolveLayers element %d (H=%g): got %d, want %d",
				j, c.H, index.Elements[j], c.want)
		}
	}
}

func TestLayerMasksPartition(t *testing.T) {
	// Every height must belong to exactly one layer mask.
	H := sparse.ZerosDense(2, 50)
	for j := range H.Elements {
		H.Elements[j] = -6000 + float64(j)*1800 // spans below, inside and above the table
	}
	total := sparse.ZerosDense(H.Shape...)
	for i := range layers {
		total.AddDense(layerMask(H, i))
	}
	for j, v := range total.Elements {
		if v != 1 {
			t.Errorf("height %g m covered by %g masks, want exactly 1",
				H.Elements[j], v)
		}
	}
}

func TestLayerParamsBroadcast(t *testing.T) {
	H := sparse.ZerosDense(3)
	H.Elements = []float64{-5000, 15000, 60000}
	index := resolveLayers(H)
	baseHeight, baseTemp, lapseRate, basePressure := layerParams(index)

	wantBase := []float64{-5000, 11000, 51000}
	wantTemp := []float64{320.65, 216.65, 270.65}
	wantLapse := []float64{-6.5e-3, 0, -2.8e-3}
	wantPressure := []float64{1.77687e5, 2.26320e4, 6.69384e1}
	for j := range wantBase {
		if baseHeight.Elements[j] != wantBase[j] ||
			baseTemp.Elements[j] != wantTemp[j] ||
			lapseRate.Elements[j] != wantLapse[j] ||
			basePressure.Elements[j] != wantPressure[j] {
			t.Errorf("element %d: got (%g, %g, %g, %g), want (%g, %g, %g, %g)",
				j, baseHeight.Elements[j], baseTemp.Elements[j],
				lapseRate.Elements[j], basePressure.Elements[j],
				wantBase[j], wantTemp[j], wantLapse[j], wantPressure[j])
		}
	}
}
