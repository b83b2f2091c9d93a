/*
Copyright © 2018 the psychro authors.
This file is part of psychro.

psychro is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

psychro is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with psychro.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package psychroutil provides a command-line interface to the psychro
// moist-air property and process calculations.
package psychroutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thermalmodel/psychro"
	"github.com/thermalmodel/psychro/process"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the psychro
	// commands.
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
			name: "pressure",
			usage: `
              pressure specifies the total (barometric) pressure [Pa].`,
			shorthand:  "p",
			defaultVal: psychro.PressureAtm,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "temperature",
			usage: `
              temperature specifies the dry-bulb temperature of the air
              (or of the first stream for mixing) [°C].`,
			shorthand:  "t",
			defaultVal: 20.0,
			flagsets: []*pflag.FlagSet{propsCmd.Flags(), dewpointCmd.Flags(),
				wetbulbCmd.Flags(), heatingCmd.Flags(), coolingCmd.Flags(), mixingCmd.Flags()},
		},
		{
			name: "rh",
			usage: `
              rh specifies the relative humidity of the air (or of the
              first stream for mixing) [%].`,
			shorthand:  "r",
			defaultVal: 50.0,
			flagsets: []*pflag.FlagSet{propsCmd.Flags(), dewpointCmd.Flags(),
				wetbulbCmd.Flags(), heatingCmd.Flags(), coolingCmd.Flags(), mixingCmd.Flags()},
		},
		{
			name: "massflow",
			usage: `
              massflow specifies the dry-air mass flow of the process
              air stream [kg/s].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{heatingCmd.Flags(), coolingCmd.Flags()},
		},
		{
			name: "walltemp",
			usage: `
              walltemp specifies the average surface temperature of the
              cooling coil [°C].`,
			defaultVal: 6.0,
			flagsets:   []*pflag.FlagSet{coolingCmd.Flags()},
		},
		{
			name: "targettemp",
			usage: `
              targettemp specifies the target outlet dry-bulb
              temperature of a process [°C]. For heating and cooling it
              is ignored when targetrh or power is given.`,
			defaultVal: 0.0,
			flagsets: []*pflag.FlagSet{heatingCmd.Flags(), coolingCmd.Flags(),
				mixingCmd.Flags()},
		},
		{
			name: "targetrh",
			usage: `
              targetrh specifies the target outlet relative humidity of
              a heating or cooling process [%]. Negative values disable
              the target.`,
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{heatingCmd.Flags(), coolingCmd.Flags()},
		},
		{
			name: "power",
			usage: `
              power specifies the heat input of a heating or cooling
              process [kW], negative for cooling. Zero disables the
              target; a nonzero value takes precedence over targettemp
              and targetrh.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{heatingCmd.Flags(), coolingCmd.Flags()},
		},
		{
			name: "temperature2",
			usage: `
              temperature2 specifies the dry-bulb temperature of the
              second stream for mixing [°C].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{mixingCmd.Flags()},
		},
		{
			name: "rh2",
			usage: `
              rh2 specifies the relative humidity of the second stream
              for mixing [%].`,
			defaultVal: 80.0,
			flagsets:   []*pflag.FlagSet{mixingCmd.Flags()},
		},
		{
			name: "minflow1",
			usage: `
              minflow1 specifies the minimum locked dry-air mass flow
              taken from the first stream [kg/s].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{mixingCmd.Flags()},
		},
		{
			name: "minflow2",
			usage: `
              minflow2 specifies the minimum locked dry-air mass flow
              taken from the second stream [kg/s].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{mixingCmd.Flags()},
		},
		{
			name: "targetflow",
			usage: `
              targetflow specifies the total dry-air mass flow of the
              mixed outlet stream [kg/s].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{mixingCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("PSYCHRO")

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
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
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
	Root.AddCommand(propsCmd)
	Root.AddCommand(dewpointCmd)
	Root.AddCommand(wetbulbCmd)
	Root.AddCommand(heatingCmd)
	Root.AddCommand(coolingCmd)
	Root.AddCommand(mixingCmd)
	Root.AddCommand(scenarioCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("psychro: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// inletAir builds the moist-air state described by the temperature,
// rh, and pressure options, overridden by up to two positional
// arguments (temperature and relative humidity).
func inletAir(args []string) (psychro.MoistAir, error) {
	t := Cfg.GetFloat64("temperature")
	rh := Cfg.GetFloat64("rh")
	if len(args) > 0 {
		v, err := cast.ToFloat64E(args[0])
		if err != nil {
			return psychro.MoistAir{}, fmt.Errorf("psychro: parsing temperature argument %q: %v", args[0], err)
		}
		t = v
	}
	if len(args) > 1 {
		v, err := cast.ToFloat64E(args[1])
		if err != nil {
			return psychro.MoistAir{}, fmt.Errorf("psychro: parsing relative humidity argument %q: %v", args[1], err)
		}
		rh = v
	}
	return psychro.NewMoistAir(t, rh, Cfg.GetFloat64("pressure"))
}

func inletFlow(args []string) (process.AirFlow, error) {
	air, err := inletAir(args)
	if err != nil {
		return process.AirFlow{}, err
	}
	return process.NewAirFlow(air, Cfg.GetFloat64("massflow"))
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "psychro",
	Short: "Moist-air property and HVAC process calculations.",
	Long: `psychro calculates thermophysical properties of moist air and the
outcomes of HVAC air-treatment processes (heating, cooling on a real
coil, and stream mixing). Use the subcommands specified below to access
the calculations.

Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the
format 'PSYCHRO_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of psychro.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("psychro v%s\n", psychro.Version)
	},
	DisableAutoGenTag: true,
}

var propsCmd = &cobra.Command{
	Use:   "props [temperature [rh]]",
	Short: "Calculate moist-air properties",
	Long: `props calculates the thermophysical properties of moist air in the
state given by the temperature, rh, and pressure options or the
positional arguments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		air, err := inletAir(args)
		if err != nil {
			return err
		}
		return writeProps(cmd.OutOrStdout(), air)
	},
	DisableAutoGenTag: true,
}

var dewpointCmd = &cobra.Command{
	Use:   "dewpoint [temperature [rh]]",
	Short: "Calculate the dew-point temperature",
	Long: `dewpoint calculates the dew-point temperature of moist air in the
state given by the temperature, rh, and pressure options or the
positional arguments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		air, err := inletAir(args)
		if err != nil {
			return err
		}
		td, err := air.DewPoint()
		if err != nil {
			return err
		}
		cmd.Printf("dew point: %.2f °C\n", td)
		return nil
	},
	DisableAutoGenTag: true,
}

var wetbulbCmd = &cobra.Command{
	Use:   "wetbulb [temperature [rh]]",
	Short: "Calculate the wet-bulb temperature",
	Long: `wetbulb calculates the thermodynamic wet-bulb temperature of moist
air in the state given by the temperature, rh, and pressure options or
the positional arguments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		air, err := inletAir(args)
		if err != nil {
			return err
		}
		twb, err := air.WetBulb()
		if err != nil {
			return err
		}
		cmd.Printf("wet bulb: %.2f °C\n", twb)
		return nil
	},
	DisableAutoGenTag: true,
}

var heatingCmd = &cobra.Command{
	Use:   "heating",
	Short: "Calculate a sensible heating process",
	Long: `heating calculates sensible heating of the air stream given by the
temperature, rh, pressure, and massflow options. The outlet is set by
the power option if nonzero, by the targetrh option if not negative,
and by the targettemp option otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inletFlow(args)
		if err != nil {
			return err
		}
		var r process.HeatingResult
		switch {
		case Cfg.GetFloat64("power") != 0:
			r, err = process.HeatingToPower(in, Cfg.GetFloat64("power"))
		case Cfg.GetFloat64("targetrh") >= 0:
			r, err = process.HeatingToRH(in, Cfg.GetFloat64("targetrh"))
		default:
			r, err = process.HeatingToTemperature(in, Cfg.GetFloat64("targettemp"))
		}
		if err != nil {
			return err
		}
		return writeHeating(cmd.OutOrStdout(), in, r)
	},
	DisableAutoGenTag: true,
}

var coolingCmd = &cobra.Command{
	Use:   "cooling",
	Short: "Calculate a cooling-coil process",
	Long: `cooling calculates cooling of the air stream given by the
temperature, rh, pressure, and massflow options on a coil with the wall
temperature given by the walltemp option. The outlet is set by the
power option if nonzero (it must be negative), by the targetrh option
if not negative, and by the targettemp option otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inletFlow(args)
		if err != nil {
			return err
		}
		wall := Cfg.GetFloat64("walltemp")
		var r process.CoolingResult
		switch {
		case Cfg.GetFloat64("power") != 0:
			r, err = process.CoolingToPower(in, wall, Cfg.GetFloat64("power"))
		case Cfg.GetFloat64("targetrh") >= 0:
			r, err = process.CoolingToRH(in, wall, Cfg.GetFloat64("targetrh"))
		default:
			r, err = process.CoolingToTemperature(in, wall, Cfg.GetFloat64("targettemp"))
		}
		if err != nil {
			return err
		}
		return writeCooling(cmd.OutOrStdout(), in, r)
	},
	DisableAutoGenTag: true,
}

var mixingCmd = &cobra.Command{
	Use:   "mixing",
	Short: "Calculate a two-stream mixing process",
	Long: `mixing mixes the streams given by the temperature/rh and
temperature2/rh2 options, choosing the flow split so that the outlet
hits the targettemp option at the total flow given by the targetflow
option. The minflow1 and minflow2 options lock minimum flows of the two
streams.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		air1, err := psychro.NewMoistAir(Cfg.GetFloat64("temperature"),
			Cfg.GetFloat64("rh"), Cfg.GetFloat64("pressure"))
		if err != nil {
			return err
		}
		air2, err := psychro.NewMoistAir(Cfg.GetFloat64("temperature2"),
			Cfg.GetFloat64("rh2"), Cfg.GetFloat64("pressure"))
		if err != nil {
			return err
		}
		r, err := process.MixingToTemperature(air1, Cfg.GetFloat64("minflow1"),
			air2, Cfg.GetFloat64("minflow2"),
			Cfg.GetFloat64("targetflow"), Cfg.GetFloat64("targettemp"))
		if err != nil {
			return err
		}
		return writeMixing(cmd.OutOrStdout(), r)
	},
	DisableAutoGenTag: true,
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario file.toml",
	Short: "Run a scenario of chained air-treatment processes",
	Long: `scenario reads a TOML scenario file describing an inlet air stream
and a sequence of air-treatment steps and calculates them in order,
feeding each outlet into the next step.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := ReadScenarioFile(args[0])
		if err != nil {
			return err
		}
		return s.Run(cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}
