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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/trailsense/graded/common"
	"github.com/trailsense/graded/geo/energy"
	"github.com/trailsense/graded/geo/grade"
	"github.com/trailsense/graded/stream"
	"github.com/trailsense/graded/types/trekpoint"
)

// trekSummary is the per-trek aggregate report.
type trekSummary struct {
	Name                 string           `json:"name"`
	Points               int              `json:"points"`
	AverageGrade         float64          `json:"averageGrade"`
	AverageConfidence    float64          `json:"averageConfidence"`
	Statistics           grade.Statistics `json:"statistics"`
	ElevationGain        float64          `json:"elevationGain"`
	ElevationLoss        float64          `json:"elevationLoss"`
	MetabolicMultiplier  float64          `json:"metabolicMultiplier"`
	MechanicalMultiplier float64          `json:"mechanicalMultiplier"`
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate grade statistics for trek points on stdin",
	Long: `

Reads a whole point set from stdin -- a GeoJSON FeatureCollection, a
bare feature array, or JSON lines -- and reports per-trek aggregates:
average grade over qualifying pairs, instant-grade statistics,
elevation gain/loss, and the cost multipliers at the average grade.

Examples:

  cat trek.geojson | graded stats
  zcat master.ndjson.gz | graded stats --preset powersaver
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("Failed to read stdin", "error", err)
			os.Exit(1)
		}

		points, err := trekpoint.DecodeShotgun(data)
		if err != nil {
			// Not a single JSON document; try JSON lines.
			points = []*trekpoint.TrekPoint{}
			for tp := range stream.NDJSON[trekpoint.TrekPoint](ctx, bytes.NewReader(data)) {
				tp := tp
				points = append(points, &tp)
			}
		}

		byTrek := map[string][]*trekpoint.TrekPoint{}
		order := []string{}
		for _, tp := range points {
			if err := tp.Validate(); err != nil {
				slog.Debug("Invalid trek point", "error", err)
				continue
			}
			name := tp.Name()
			if _, ok := byTrek[name]; !ok {
				order = append(order, name)
			}
			byTrek[name] = append(byTrek[name], tp)
		}
		if len(order) == 0 {
			slog.Error("No valid trek points on stdin")
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for _, name := range order {
			pts := byTrek[name]
			tracker := grade.NewTracker(configuredPreset())

			avg, conf := tracker.AverageGrade(pts)
			for _, tp := range pts {
				tracker.UpdateElevationMetrics(tp.Elevation(),
					grade.AccuracyConfidence(tp.VAccuracy()))
			}
			gain, loss := tracker.ElevationMetrics()
			metabolic, mechanical := energy.Multipliers(avg)

			if err := enc.Encode(trekSummary{
				Name:                 name,
				Points:               len(pts),
				AverageGrade:         avg,
				AverageConfidence:    conf,
				Statistics:           tracker.Statistics(),
				ElevationGain:        common.DecimalToFixed(gain, 1),
				ElevationLoss:        common.DecimalToFixed(loss, 1),
				MetabolicMultiplier:  metabolic,
				MechanicalMultiplier: mechanical,
			}); err != nil {
				slog.Error("Failed to encode trek summary", "error", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
