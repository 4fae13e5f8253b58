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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx"

	"github.com/airinnova/ambiance"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Tabulate atmospheric properties over a height range.",
	Long: `table evaluates the selected atmospheric properties at regular
height steps between --begin and --end and writes the result to the
file given by --output. The file extension selects the format:
.csv for comma-separated values or .xlsx for a spreadsheet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		begin, end, err := heightRange(Cfg)
		if err != nil {
			return err
		}
		heights, err := steppedHeights(begin, end, Cfg.GetFloat64("step"))
		if err != nil {
			return err
		}
		props, err := selectedProperties(Cfg)
		if err != nil {
			return err
		}
		table, err := NewTable(heights, props)
		if err != nil {
			return err
		}

		output := Cfg.GetString("output")
		if err := table.Write(output); err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"rows":   len(heights),
			"output": output,
		}).Info("wrote atmosphere table")
		return nil
	},
	DisableAutoGenTag: true,
}

// Table holds atmospheric properties evaluated at a sequence of
// heights, one row per height.
type Table struct {
	heights []float64
	layers  []string
	props   []ambiance.Property
	columns [][]float64 // one column per property, aligned with heights
}

// NewTable evaluates the given properties at the given geometric
// heights [m].
func NewTable(heights []float64, props []ambiance.Property) (*Table, error) {
	atm, err := ambiance.NewSlice(heights)
	if err != nil {
		return nil, err
	}
	t := &Table{
		heights: heights,
		layers:  atm.LayerName(),
		props:   props,
		columns: make([][]float64, len(props)),
	}
	for i, p := range props {
		t.columns[i] = atm.Get(p).Elements
	}
	return t, nil
}

// header returns the column titles.
func (t *Table) header() []string {
	h := []string{"geometric_height [m]", "layer"}
	for _, p := range t.props {
		h = append(h, fmt.Sprintf("%s [%s]", p, p.Units()))
	}
	return h
}

// Write writes the table to the named file; the file extension
// selects the format (.csv or .xlsx).
func (t *Table) Write(file string) error {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv":
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("ambiance: creating table file: %v", err)
		}
		if err := t.WriteCSV(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".xlsx":
		return t.WriteXLSX(file)
	default:
		return fmt.Errorf("ambiance: unsupported table format %q (use .csv or .xlsx)", ext)
	}
}

// WriteCSV writes the table in CSV format.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header()); err != nil {
		return fmt.Errorf("ambiance: writing table: %v", err)
	}
	for j, h := range t.heights {
		row := make([]string, 0, len(t.props)+2)
		row = append(row, formatFloat(h), t.layers[j])
		for _, col := range t.columns {
			row = append(row, formatFloat(col[j]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ambiance: writing table: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the table as a spreadsheet to the named file.
func (t *Table) WriteXLSX(file string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Atmosphere")
	if err != nil {
		return fmt.Errorf("ambiance: writing spreadsheet: %v", err)
	}
	hdr := sheet.AddRow()
	for _, title := range t.header() {
		hdr.AddCell().SetString(title)
	}
	for j, h := range t.heights {
		row := sheet.AddRow()
		row.AddCell().SetFloat(h)
		row.AddCell().SetString(t.layers[j])
		for _, col := range t.columns {
			row.AddCell().SetFloat(col[j])
		}
	}
	if err := f.Save(file); err != nil {
		return fmt.Errorf("ambiance: writing spreadsheet: %v", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
