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
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/airinnova/ambiance"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot atmospheric property profiles.",
	Long: `plot draws each selected atmospheric property against geometric
height between --begin and --end and writes one PNG file per property
to the directory given by --outdir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		begin, end, err := heightRange(Cfg)
		if err != nil {
			return err
		}
		heights, err := spannedHeights(begin, end, Cfg.GetInt("points"))
		if err != nil {
			return err
		}
		props, err := selectedProperties(Cfg)
		if err != nil {
			return err
		}
		atm, err := ambiance.NewSlice(heights)
		if err != nil {
			return err
		}

		outdir := Cfg.GetString("outdir")
		for _, p := range props {
			file, err := plotProfile(atm, p, outdir)
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"property": p.String(),
				"output":   file,
			}).Info("wrote profile plot")
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// plotProfile draws property p against geometric height and writes
// the plot to a PNG file in outdir, returning the file path.
func plotProfile(atm *ambiance.Atmosphere, p ambiance.Property, outdir string) (string, error) {
	heights := atm.Height().Elements
	values := atm.Get(p).Elements

	pts := make(plotter.XYs, len(heights))
	for j := range heights {
		pts[j].X = values[j]
		pts[j].Y = heights[j] / 1000 // km reads better on the axis
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s [%s]", p, p.Units())
	pl.X.Label.Text = fmt.Sprintf("%s [%s]", p, p.Units())
	pl.Y.Label.Text = "geometric height [km]"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", fmt.Errorf("ambiance: plotting %s: %v", p, err)
	}
	line.Width = vg.Points(1.5)
	pl.Add(plotter.NewGrid(), line)

	file := filepath.Join(outdir, fmt.Sprintf("%s.png", p))
	if err := pl.Save(4*vg.Inch, 6*vg.Inch, file); err != nil {
		return "", fmt.Errorf("ambiance: saving plot for %s: %v", p, err)
	}
	return file, nil
}
