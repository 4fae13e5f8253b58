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

package ambianceutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/airinnova/ambiance"
)

func TestPlotProfile(t *testing.T) {
	heights, err := spannedHeights(ambiance.HeightMin, ambiance.HeightMax, 50)
	if err != nil {
		t.Fatal(err)
	}
	atm, err := ambiance.NewSlice(heights)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	file, err := plotProfile(atm, ambiance.Density, dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := file, filepath.Join(dir, "density.png"); got != want {
		t.Errorf("plot file: got %q, want %q", got, want)
	}
	info, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}
