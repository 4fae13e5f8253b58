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
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/airinnova/ambiance"
)

func TestSelectedProperties(t *testing.T) {
	cfg := viper.New()

	props, err := selectedProperties(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != len(ambiance.Properties()) {
		t.Errorf("default selection: got %d properties, want %d",
			len(props), len(ambiance.Properties()))
	}

	cfg.Set("properties", []string{"pressure", " density "})
	props, err = selectedProperties(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 2 || props[0] != ambiance.Pressure || props[1] != ambiance.Density {
		t.Errorf("named selection: got %v", props)
	}

	cfg.Set("properties", []string{"warp_factor"})
	if _, err := selectedProperties(cfg); err == nil {
		t.Error("expected error for unknown property name")
	}
}

func TestSteppedHeights(t *testing.T) {
	h, err := steppedHeights(0, 10000, 2500)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 2500, 5000, 7500, 10000}
	if len(h) != len(want) {
		t.Fatalf("got %d heights, want %d", len(h), len(want))
	}
	for i := range want {
		if math.Abs(h[i]-want[i]) > 1e-9 {
			t.Errorf("height %d: got %g, want %g", i, h[i], want[i])
		}
	}

	// A step that does not divide the range evenly stops short of end.
	h, err = steppedHeights(0, 9999, 2500)
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != 4 || h[len(h)-1] != 7500 {
		t.Errorf("uneven range: got %v", h)
	}

	if _, err := steppedHeights(0, 1000, -1); err == nil {
		t.Error("expected error for non-positive step")
	}
}

func TestSpannedHeights(t *testing.T) {
	h, err := spannedHeights(-5004, 81020, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != 100 || h[0] != -5004 || h[99] != 81020 {
		t.Errorf("got %d heights spanning [%g, %g]", len(h), h[0], h[len(h)-1])
	}
	if _, err := spannedHeights(0, 1000, 1); err == nil {
		t.Error("expected error for a single evaluation point")
	}
}

func TestWriteEval(t *testing.T) {
	atm, err := ambiance.NewSlice([]float64{0, 12000})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	err = writeEval(&buf, atm, []ambiance.Property{ambiance.Temperature, ambiance.Pressure})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"geometric_height [m]", "troposphere",
		"tropopause", "temperature [K]", "pressure [Pa]", "288.15", "101325"} {
		if !strings.Contains(out, want) {
			t.Errorf("eval output missing %q:\n%s", want, out)
		}
	}
}

func TestEvalCommand(t *testing.T) {
	var buf bytes.Buffer
	Root.SetOut(&buf)
	Root.SetErr(&buf)
	Root.SetArgs([]string{"eval", "0"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "101325") {
		t.Errorf("eval command output missing sea level pressure:\n%s", buf.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	Root.SetOut(&buf)
	Root.SetErr(&buf)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), ambiance.Version) {
		t.Errorf("version output: got %q", buf.String())
	}
}
