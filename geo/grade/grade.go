/*
Package grade turns noisy, irregularly-spaced GPS/elevation fixes into
a stable, confidence-scored terrain grade signal.

The tracker computes an instantaneous grade for each consecutive pair
of fixes, keeps a bounded history of results, smooths over that history
with recency/confidence/distance weights, and separately accumulates
elevation gain and loss behind a noise gate. Bad input never errors;
it degrades to zero-grade or zero-confidence results so downstream
energy calculation always has a value to work with.
*/
package grade

import (
	"math"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/paulmach/orb/geo"
	"github.com/trailsense/graded/common"
	"github.com/trailsense/graded/params"
	"github.com/trailsense/graded/types/trekpoint"
)

// Result is one grade measurement over a pair of fixes.
// InstantGrade and SmoothedGrade are percentages quantized to 0.5;
// |InstantGrade| never exceeds the configured MaxGradePercent.
type Result struct {
	InstantGrade    float64   `json:"instantGrade"`
	SmoothedGrade   float64   `json:"smoothedGrade"`
	Confidence      float64   `json:"confidence"`
	Distance        float64   `json:"distance"`
	ElevationChange float64   `json:"elevationChange"`
	Time            time.Time `json:"time"`
}

// Statistics summarizes the instant grades currently in history.
type Statistics struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// Tracker is the grade engine for one trek session.
// All mutable state (result history, gain/loss accumulator) is owned
// exclusively by the tracker and serialized behind a mutex; reads see
// consistent snapshots. Configuration is fixed at construction.
type Tracker struct {
	Config params.GradeConfig

	mu      sync.Mutex
	history *common.RingBuffer[Result]

	// Gain/loss accumulator. Decoupled from the grade pipeline;
	// fed by UpdateElevationMetrics, possibly from a fused source.
	refElevation    float64
	hasRefElevation bool
	gain, loss      float64
}

// NewTracker creates a tracker with the given preset.
// A zero-value config falls back to the balanced preset.
func NewTracker(config params.GradeConfig) *Tracker {
	if config == (params.GradeConfig{}) {
		config = params.BalancedGradeConfig
	}
	return &Tracker{
		Config:  config,
		history: common.NewRingBuffer[Result](params.MaxGradeHistory),
	}
}

// CalculateGrade computes the grade between two consecutive fixes,
// using the elevation each fix carries.
func (t *Tracker) CalculateGrade(start, end *trekpoint.TrekPoint) Result {
	return t.CalculateGradeWithElevations(start, end, start.Elevation(), end.Elevation())
}

// CalculateGradeWithElevations computes the grade between two
// consecutive fixes with explicit elevations, letting a caller inject
// fused or barometric values in place of the fixes' own.
//
// Pairs shorter than MinDistanceForGrade yield a zero-grade,
// zero-confidence result; elevation deltas below MinElevationChange
// yield a zero-grade result with normally-computed confidence. Neither
// enters history; SmoothedGrade still reflects prior history. Only a
// fully-qualified pair appends to history.
func (t *Tracker) CalculateGradeWithElevations(start, end *trekpoint.TrekPoint, startElevation, endElevation float64) Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	distance := geo.Distance(start.Point(), end.Point())
	res := Result{Distance: distance}
	if et, err := end.Time(); err == nil {
		res.Time = et
	}

	// The distance gate fires first for any distance <= 0,
	// so the grade ratio below can never divide by zero.
	if distance < t.Config.MinDistanceForGrade {
		res.SmoothedGrade = t.smoothedGrade()
		return res
	}

	elevationChange := endElevation - startElevation
	res.ElevationChange = elevationChange
	res.Confidence = Confidence(distance, start.VAccuracy(), end.VAccuracy())

	// Below the noise floor the elevation signal is jitter, not slope.
	// Distance was sufficient, so confidence stands.
	if math.Abs(elevationChange) < t.Config.MinElevationChange {
		res.SmoothedGrade = t.smoothedGrade()
		return res
	}

	raw := elevationChange / distance * 100
	res.InstantGrade = common.RoundToStep(
		common.Clamp(raw, -t.Config.MaxGradePercent, t.Config.MaxGradePercent), 0.5)

	t.history.Add(res)
	res.SmoothedGrade = t.smoothedGrade()
	return res
}

// SmoothedGrade returns the recency/confidence/distance-weighted
// average of recent instant grades, quantized to 0.5.
// Empty history returns 0.
func (t *Tracker) SmoothedGrade() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.smoothedGrade()
}

// smoothedGrade expects t.mu held.
// Longer, higher-confidence, more-recent segments dominate; short
// noisy segments are down-weighted without being excluded.
func (t *Tracker) smoothedGrade() float64 {
	n := t.history.Len()
	if n == 0 {
		return 0
	}
	w := t.Config.SmoothingWindowSize
	if w > n {
		w = n
	}
	window := t.history.Tail(w)

	weightedSum, totalWeight := 0.0, 0.0
	for i, r := range window {
		recency := float64(i+1) / float64(len(window))
		weight := r.Confidence * r.Distance * recency
		weightedSum += r.InstantGrade * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}
	return common.RoundToStep(weightedSum/totalWeight, 0.5)
}

// UpdateElevationMetrics feeds the gain/loss accumulator with an
// elevation estimate and a confidence for it. Low-confidence fixes
// (<= 0.5) are rejected outright. Changes smaller than
// GradeNoiseThreshold are discarded without advancing the reference
// elevation, so oscillation around a point never accumulates drift.
func (t *Tracker) UpdateElevationMetrics(elevation, confidence float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if confidence <= 0.5 {
		return
	}
	if !t.hasRefElevation {
		t.refElevation = elevation
		t.hasRefElevation = true
		return
	}
	change := elevation - t.refElevation
	if math.Abs(change) < t.Config.GradeNoiseThreshold {
		return
	}
	if change > 0 {
		t.gain += change
	} else {
		t.loss += -change
	}
	t.refElevation = elevation
}

// ElevationMetrics returns the cumulative gain and loss, in meters.
func (t *Tracker) ElevationMetrics() (gain, loss float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gain, t.loss
}

// AverageGrade computes the aggregate grade of an ordered run of
// fixes: the summed elevation change of qualifying pairs over their
// summed distance, with the mean confidence of those pairs. Pairs with
// confidence <= 0.5 don't qualify; fewer than 2 points, no qualifying
// pair, or total qualifying distance under MinDistanceForGrade yield
// (0, 0).
//
// Each pairwise computation goes through CalculateGrade, so calling
// this mutates the tracker's rolling history like live updates would.
func (t *Tracker) AverageGrade(points []*trekpoint.TrekPoint) (gradePercent, confidence float64) {
	if len(points) < 2 {
		return 0, 0
	}

	var elevationSum, distanceSum float64
	confidences := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		res := t.CalculateGrade(points[i-1], points[i])
		if res.Confidence <= 0.5 {
			continue
		}
		elevationSum += res.ElevationChange
		distanceSum += res.Distance
		confidences = append(confidences, res.Confidence)
	}

	if len(confidences) == 0 || distanceSum < t.Config.MinDistanceForGrade {
		return 0, 0
	}
	mean, err := stats.Mean(confidences)
	if err != nil {
		return 0, 0
	}
	return common.RoundToStep(elevationSum/distanceSum*100, 0.5), mean
}

// Statistics summarizes the instant grades currently in history:
// min, max, mean, and population variance. All zero when empty.
func (t *Tracker) Statistics() Statistics {
	t.mu.Lock()
	defer t.mu.Unlock()

	grades := make([]float64, 0, t.history.Len())
	t.history.Scan(func(r Result) bool {
		grades = append(grades, r.InstantGrade)
		return true
	})
	if len(grades) == 0 {
		return Statistics{}
	}

	statsMustFloat := func(out float64, _ error) float64 {
		return out
	}
	return Statistics{
		Min:      statsMustFloat(stats.Min(grades)),
		Max:      statsMustFloat(stats.Max(grades)),
		Mean:     statsMustFloat(stats.Mean(grades)),
		Variance: statsMustFloat(stats.PopulationVariance(grades)),
	}
}

// Reset clears history and the gain/loss accumulator for a new
// session. Configuration is untouched.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.history.Reset()
	t.refElevation = 0
	t.hasRefElevation = false
	t.gain = 0
	t.loss = 0
}
