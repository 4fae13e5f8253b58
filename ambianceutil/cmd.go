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

// Package ambianceutil wires the ambiance standard-atmosphere library
// into a command-line interface.
package ambianceutil

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/airinnova/ambiance"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	Cfg = viper.New()

	// Options are the configuration options available to the
	// ambiance commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "begin",
			usage: `
              begin specifies the first geometric height [m] of the
              evaluated range.`,
			shorthand:  "b",
			defaultVal: float64(ambiance.HeightMin),
			flagsets:   []*pflag.FlagSet{tableCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "end",
			usage: `
              end specifies the last geometric height [m] of the
              evaluated range.`,
			shorthand:  "e",
			defaultVal: float64(ambiance.HeightMax),
			flagsets:   []*pflag.FlagSet{tableCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "step",
			usage: `
              step specifies the height increment [m] between table rows.`,
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{tableCmd.Flags()},
		},
		{
			name: "points",
			usage: `
              points specifies the number of evaluation points per plot.`,
			defaultVal: 500,
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "properties",
			usage: `
              properties specifies which atmospheric properties to
              include. The default includes all of them.`,
			shorthand:  "p",
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), tableCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the output file location. The file
              extension selects the format: .csv or .xlsx.`,
			shorthand:  "o",
			defaultVal: "atmosphere.csv",
			flagsets:   []*pflag.FlagSet{tableCmd.Flags()},
		},
		{
			name: "outdir",
			usage: `
              outdir specifies the directory the plot files are
              written to, one PNG file per property.`,
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "from-pressure",
			usage: `
              from-pressure interprets the arguments as pressures [Pa]
              and recovers the corresponding heights.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "from-density",
			usage: `
              from-density interprets the arguments as densities
              [kg/m^3] and recovers the corresponding heights.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
	}

	for _, option := range options {
		for _, set := range option.flagsets {
			if set.Lookup(option.name) != nil {
				continue // flag already exists
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case []string:
				set.StringSliceP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic(fmt.Sprintf("ambiance: invalid argument type %T for option %s",
					option.defaultVal, option.name))
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(versionCmd, evalCmd, tableCmd, plotCmd)
}

// setConfig reads the optional configuration file and binds
// environment variables in the format AMBIANCE_var.
func setConfig() error {
	Cfg.SetEnvPrefix("AMBIANCE")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	Cfg.AutomaticEnv()
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("ambiance: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ambiance",
	Short: "Compute ICAO standard atmosphere properties.",
	Long: `Ambiance computes atmospheric properties (temperature, pressure,
density, viscosity, speed of sound and others) for geometric heights
between -5004 m and 81020 m, following the ICAO standard atmosphere
(1993). Use the subcommands specified below to evaluate, tabulate or
plot the properties.

Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the
format 'AMBIANCE_var' where 'var' is the name of the variable to be
set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Rebind the invoked command's flags so that flags shared
		// between subcommands resolve to the instance the user set.
		if err := Cfg.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return setConfig()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Ambiance.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Ambiance v%s\n", ambiance.Version)
	},
	DisableAutoGenTag: true,
}

var evalCmd = &cobra.Command{
	Use:   "eval height [height...]",
	Short: "Evaluate atmospheric properties at the given heights.",
	Long: `eval computes the selected atmospheric properties at the geometric
heights [m] given as arguments. With --from-pressure or --from-density
the arguments are instead pressures [Pa] or densities [kg/m^3], and the
heights are recovered by inversion before the properties are computed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]float64, len(args))
		for i, arg := range args {
			v, err := cast.ToFloat64E(arg)
			if err != nil {
				return fmt.Errorf("ambiance: parsing argument %q: %v", arg, err)
			}
			values[i] = v
		}

		var (
			atm *ambiance.Atmosphere
			err error
		)
		switch {
		case Cfg.GetBool("from-pressure") && Cfg.GetBool("from-density"):
			return fmt.Errorf("ambiance: --from-pressure and --from-density are mutually exclusive")
		case Cfg.GetBool("from-pressure"):
			atm, err = ambiance.FromPressureSlice(values)
		case Cfg.GetBool("from-density"):
			atm, err = ambiance.FromDensitySlice(values)
		default:
			atm, err = ambiance.NewSlice(values)
		}
		if err != nil {
			return err
		}

		props, err := selectedProperties(Cfg)
		if err != nil {
			return err
		}
		return writeEval(cmd.OutOrStdout(), atm, props)
	},
	DisableAutoGenTag: true,
}

// writeEval writes one aligned row per property, one column per height.
func writeEval(w io.Writer, atm *ambiance.Atmosphere, props []ambiance.Property) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "geometric_height [m]")
	for _, h := range atm.Height().Elements {
		fmt.Fprintf(tw, "\t%g", h)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "layer")
	for _, name := range atm.LayerName() {
		fmt.Fprintf(tw, "\t%s", name)
	}
	fmt.Fprintln(tw)

	for _, p := range props {
		fmt.Fprintf(tw, "%s [%s]", p, p.Units())
		for _, v := range atm.Get(p).Elements {
			fmt.Fprintf(tw, "\t%.6g", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
