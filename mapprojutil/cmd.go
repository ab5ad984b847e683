/*
Copyright © 2019 the mapproj authors.
This file is part of mapproj.

mapproj is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

mapproj is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with mapproj.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package mapprojutil contains the command-line interface to mapproj.
package mapprojutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/mapproj"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to mapproj.
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
			name: "proj",
			usage: `
              proj gives the projection as a PROJ.4 definition, for example
              "+proj=sterea +lat_0=52.156 +lon_0=5.387 +k=0.9999079 +ellps=bessel".
              If it is set, method and params are ignored.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "method",
			usage: `
              method is the name of the projection method. Run the methods
              command for a list of valid names.`,
			shorthand:  "m",
			defaultVal: "Oblique_Stereographic",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "params",
			usage: `
              params holds the projection parameters as a JSON object (or a
              [params] table in the configuration file), for example
              {"semi_major": 6378137, "semi_minor": 6356752.314, "latitude_of_origin": 45}.
              Angles are in decimal degrees.`,
			shorthand:  "p",
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the level of log messages written to standard
              error: debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "CacheSize",
			usage: `
              CacheSize is the number of projections kept in memory for
              reuse.`,
			defaultVal: 16,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "input",
			usage: `
              input is the path of the file to read points or geometries
              from. Standard input is read if it is empty or "-".`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags(), geojsonCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output is the path of the file to write results to. Standard
              output is written to if it is empty or "-".`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags(), geojsonCmd.Flags(), describeCmd.Flags()},
		},
		{
			name: "inverse",
			usage: `
              inverse converts projected coordinates to longitude and
              latitude instead of projecting them.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{batchCmd.Flags(), geojsonCmd.Flags()},
		},
		{
			name: "float32",
			usage: `
              float32 transforms the points in single precision.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "toml",
			usage: `
              toml writes the projection as a configuration file that can be
              read back with the --config flag.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{describeCmd.Flags()},
		},
		{
			name: "step",
			usage: `
              step is the spacing in degrees of the grid of points that
              verify checks.`,
			defaultVal: 5.0,
			flagsets:   []*pflag.FlagSet{verifyCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("MAPPROJ")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := strings.TrimSpace(b.String())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(methodsCmd)
	Root.AddCommand(forwardCmd)
	Root.AddCommand(inverseCmd)
	Root.AddCommand(batchCmd)
	Root.AddCommand(geojsonCmd)
	Root.AddCommand(describeCmd)
	Root.AddCommand(verifyCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("mapproj: problem reading configuration file: %v", err)
		}
	}
	lvl, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("mapproj: invalid LogLevel: %v", err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "mapproj",
	Short: "A map projection engine.",
	Long: `mapproj converts geographic coordinates (longitude and latitude in decimal
degrees) into projected coordinates and back. Use the subcommands specified
below to access the functionality.

The projection is given either as a PROJ.4 definition (--proj) or as the name
of a projection method (--method) and its parameters (--params).
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'MAPPROJ_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	SilenceUsage:      true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of mapproj.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("mapproj v%s\n", mapproj.Version)
	},
	DisableAutoGenTag: true,
}

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the projection methods",
	Long:  "methods lists the supported projection methods and their aliases.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range mapproj.Providers() {
			g, err := mapproj.Group(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, strings.Join(g.Aliases, ", "))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var forwardCmd = &cobra.Command{
	Use:   "forward [--] LON LAT",
	Short: "Project a point",
	Long: `forward projects a single point given as longitude and latitude in
decimal degrees and prints its projected coordinates. Negative values must
follow "--" so that they are not read as flags, for example
"mapproj forward -- -90 30".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := projection(Cfg)
		if err != nil {
			return err
		}
		return transformPoint(cmd, p.Forward, args)
	},
	DisableAutoGenTag: true,
}

var inverseCmd = &cobra.Command{
	Use:   "inverse [--] X Y",
	Short: "Convert a projected point to longitude and latitude",
	Long: `inverse converts a single point given in projected coordinates and
prints its longitude and latitude in decimal degrees. Negative values must
follow "--" so that they are not read as flags.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := projection(Cfg)
		if err != nil {
			return err
		}
		return transformPoint(cmd, p.Inverse, args)
	},
	DisableAutoGenTag: true,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Transform a CSV file of points",
	Long: `batch reads points from a CSV file whose first two columns hold the
coordinates, transforms them and writes the results as a two column CSV file.
A first row that does not hold numbers is treated as a header. Points that
cannot be transformed are written as NaN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := projection(Cfg)
		if err != nil {
			return err
		}
		var t mapproj.Transform = p
		if Cfg.GetBool("inverse") {
			t = p.InverseTransform()
		}
		in, err := openInput(Cfg.GetString("input"))
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := createOutput(cmd, Cfg.GetString("output"))
		if err != nil {
			return err
		}
		if err := Batch(in, out, t, Cfg.GetBool("float32")); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	},
	DisableAutoGenTag: true,
}

var geojsonCmd = &cobra.Command{
	Use:   "geojson",
	Short: "Transform a GeoJSON geometry",
	Long: `geojson reads a GeoJSON Point, LineString or Polygon geometry,
transforms all of its coordinates and writes the result as GeoJSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := projection(Cfg)
		if err != nil {
			return err
		}
		t := p.Forward
		if Cfg.GetBool("inverse") {
			t = p.Inverse
		}
		in, err := openInput(Cfg.GetString("input"))
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := createOutput(cmd, Cfg.GetString("output"))
		if err != nil {
			return err
		}
		if err := GeoJSON(in, out, t); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	},
	DisableAutoGenTag: true,
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the projection",
	Long: `describe prints the projection method and all of its parameters,
including default values. With --toml the description is written as a
configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := projection(Cfg)
		if err != nil {
			return err
		}
		out, err := createOutput(cmd, Cfg.GetString("output"))
		if err != nil {
			return err
		}
		if Cfg.GetBool("toml") {
			if err := WriteConfig(out, p); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		}
		fmt.Fprintln(out, p.ParameterDescriptor())
		return out.Close()
	},
	DisableAutoGenTag: true,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the projection against its inverse",
	Long: `verify projects a grid of points covering the globe, converts
the results back and reports every point where the two disagree. Points the
projection cannot handle, such as the antipode of a stereographic
projection, are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := projection(Cfg)
		if err != nil {
			return err
		}
		s, err := Verify(p, Cfg.GetFloat64("step"), logrus.StandardLogger())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d points checked, %d skipped, %d failed\n", s.Checked, s.Skipped, s.Failed)
		if s.Failed > 0 {
			return fmt.Errorf("mapproj: %s failed verification at %d points", p.Name(), s.Failed)
		}
		return nil
	},
	DisableAutoGenTag: true,
}
