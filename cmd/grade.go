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
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/jellydator/ttlcache/v3"
	"github.com/spf13/cobra"
	"github.com/trailsense/graded/common"
	"github.com/trailsense/graded/events"
	"github.com/trailsense/graded/geo/energy"
	"github.com/trailsense/graded/geo/grade"
	"github.com/trailsense/graded/params"
	"github.com/trailsense/graded/stream"
	"github.com/trailsense/graded/types/trekpoint"
)

var optBaseMET float64

// gradeRecord is one output line: a grade result tagged with its trek.
type gradeRecord struct {
	Name string `json:"name"`
	grade.Result
}

// gradeCmd represents the grade command
var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Compute grades from trek points on stdin",
	Long: `

Trek points are decoded as JSON lines from stdin and grouped by trek Name.
Each trek gets its own engine instance; a trek idle past the cache TTL
expires, so its next point starts a fresh session (empty history, zeroed
gain/loss).

Consecutive points per trek are paired into grade results, written as
JSON lines to stdout. Duplicate fixes (flaky-uplink re-pushes) are
dropped by an LRU filter before pairing. Every computed result is also
published on the grade result feed.

Examples:

  zcat trek.geojson.gz | graded grade --preset precision > grades.ndjson
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		trackers := ttlcache.New[string, *grade.Tracker](
			ttlcache.WithTTL[string, *grade.Tracker](params.CacheTrackerTTL))
		go trackers.Start()
		defer trackers.Stop()

		getTracker := func(name string) *grade.Tracker {
			if item := trackers.Get(name); item != nil {
				return item.Value()
			}
			t := grade.NewTracker(configuredPreset())
			trackers.Set(name, t, ttlcache.DefaultTTL)
			return t
		}

		// Telemetry subscriber; what a calorie model downstream would do.
		resultsCh := make(chan grade.Result, params.DefaultChannelBufferSize)
		sub := events.GradeResultFeed.Subscribe(resultsCh)
		defer sub.Unsubscribe()
		go func() {
			for {
				select {
				case res := <-resultsCh:
					slog.Debug("Grade result",
						"instant", res.InstantGrade,
						"smoothed", res.SmoothedGrade,
						"confidence", res.Confidence,
						"met", energy.ScaleMET(optBaseMET, res.SmoothedGrade))
				case <-sub.Err():
					return
				}
			}
		}()

		dedupe := trekpoint.NewDedupeLRUFunc()
		lastPoints := map[string]*trekpoint.TrekPoint{}
		var read, computed int64

		enc := json.NewEncoder(os.Stdout)

		points := stream.NDJSON[trekpoint.TrekPoint](ctx, os.Stdin)
		valid := stream.Filter(ctx, func(tp trekpoint.TrekPoint) bool {
			read++
			if err := tp.Validate(); err != nil {
				slog.Debug("Invalid trek point", "error", err)
				return false
			}
			return dedupe(tp)
		}, points)

		for tp := range valid {
			tp := tp
			name := tp.Name()
			tracker := getTracker(name)

			// The accumulator runs on every fix, independent of pairing.
			tracker.UpdateElevationMetrics(tp.Elevation(),
				grade.AccuracyConfidence(tp.VAccuracy()))

			last, ok := lastPoints[name]
			lastPoints[name] = &tp
			if !ok {
				continue
			}

			res := tracker.CalculateGrade(last, &tp)
			computed++
			events.GradeResultFeed.Send(res)

			if err := enc.Encode(gradeRecord{Name: name, Result: res}); err != nil {
				slog.Error("Failed to encode grade record", "error", err)
				return
			}
		}

		for _, name := range trackers.Keys() {
			item := trackers.Get(name)
			if item == nil {
				continue
			}
			gain, loss := item.Value().ElevationMetrics()
			slog.Info("Trek summary", "name", name,
				"smoothed", item.Value().SmoothedGrade(),
				"gain", common.DecimalToFixed(gain, 1),
				"loss", common.DecimalToFixed(loss, 1))
		}
		slog.Info("Graded trek points",
			"read", humanize.Comma(read),
			"computed", humanize.Comma(computed))
	},
}

func init() {
	rootCmd.AddCommand(gradeCmd)
	gradeCmd.Flags().Float64Var(&optBaseMET, "base-met", 7.0,
		"Baseline MET rate the metabolic multiplier scales (debug telemetry)")
}
