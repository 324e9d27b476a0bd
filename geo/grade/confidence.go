package grade

import (
	"math"

	"github.com/trailsense/graded/params"
)

// Confidence scores a pairwise grade estimate in [0, 1] from the
// baseline distance and the worse (larger) of the two fixes'
// vertical accuracies.
func Confidence(distance, startVAccuracy, endVAccuracy float64) float64 {
	return DistanceConfidence(distance) *
		AccuracyConfidence(math.Max(startVAccuracy, endVAccuracy))
}

// DistanceConfidence ramps linearly with baseline length, saturating
// at ConfidenceSaturationDistance (50 m). Longer baselines shrink the
// relative impact of GPS error on the grade ratio.
func DistanceConfidence(distance float64) float64 {
	return math.Min(1, distance/params.ConfidenceSaturationDistance)
}

// AccuracyConfidence maps a vertical accuracy estimate, in meters, to
// a discrete trust tier. Negative means the client reported no
// accuracy at all.
func AccuracyConfidence(vAccuracy float64) float64 {
	switch {
	case vAccuracy < 0:
		return 0.5
	case vAccuracy <= 1:
		return 1.0
	case vAccuracy <= 5:
		return 0.8
	case vAccuracy <= 10:
		return 0.6
	default:
		return 0.3
	}
}
