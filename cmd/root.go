/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trailsense/graded/params"
)

var optVerbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graded",
	Short: "Terrain grade engine for trek telemetry",
	Long: `
graded computes real-time terrain grade from GPS/elevation trek points
and derives metabolic/mechanical cost multipliers from it.

Points are GeoJSON point features with Elevation, VAccuracy, UnixTime
(or Time), and Name properties. Grades are confidence-scored, smoothed
over a bounded recent window, and never error: bad input degrades to
zero-grade or zero-confidence results so downstream calorie math
always has a value.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if optVerbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("preset", "balanced",
		"Grade engine preset: precision|balanced|powersaver")
	rootCmd.PersistentFlags().BoolVarP(&optVerbose, "verbose", "v", false,
		"Debug logging")

	viper.SetEnvPrefix("graded")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("preset", rootCmd.PersistentFlags().Lookup("preset"))
}

// configuredPreset resolves the engine preset from flag or GRADED_PRESET env.
func configuredPreset() params.GradeConfig {
	return params.GradeConfigNamed(viper.GetString("preset"))
}
