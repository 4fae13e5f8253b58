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
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/airinnova/ambiance"
)

// selectedProperties returns the properties named by the
// "properties" configuration variable, or all properties when the
// variable is unset.
func selectedProperties(cfg *viper.Viper) ([]ambiance.Property, error) {
	names := cfg.GetStringSlice("properties")
	if len(names) == 0 {
		return ambiance.Properties(), nil
	}
	props := make([]ambiance.Property, len(names))
	for i, name := range names {
		p, err := ambiance.ParseProperty(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		props[i] = p
	}
	return props, nil
}

// heightRange returns the begin and end heights from the
// configuration, checked against the valid height range.
func heightRange(cfg *viper.Viper) (begin, end float64, err error) {
	begin, err = cast.ToFloat64E(cfg.Get("begin"))
	if err != nil {
		return 0, 0, fmt.Errorf("ambiance: parsing begin height: %v", err)
	}
	end, err = cast.ToFloat64E(cfg.Get("end"))
	if err != nil {
		return 0, 0, fmt.Errorf("ambiance: parsing end height: %v", err)
	}
	if end <= begin {
		return 0, 0, fmt.Errorf("ambiance: end height %g m is not above begin height %g m", end, begin)
	}
	return begin, end, nil
}

// steppedHeights returns heights from begin to end in increments of
// step; the last height is the largest begin+k·step that does not
// exceed end.
func steppedHeights(begin, end, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("ambiance: height step must be positive, got %g m", step)
	}
	n := int((end-begin)/step) + 1
	h := make([]float64, n)
	floats.Span(h, begin, begin+float64(n-1)*step)
	return h, nil
}

// spannedHeights returns n heights evenly spaced from begin to end
// inclusive.
func spannedHeights(begin, end float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("ambiance: need at least 2 evaluation points, got %d", n)
	}
	h := make([]float64, n)
	floats.Span(h, begin, end)
	return h, nil
}
