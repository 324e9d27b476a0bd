package params

// GradeConfig tunes the grade engine.
// Configs are immutable for the lifetime of a tracker;
// a session wanting different tuning builds a new tracker.
type GradeConfig struct {
	// MinDistanceForGrade is the minimum horizontal separation, in meters,
	// between two fixes before a grade is computed at all.
	// Below this, GPS jitter dominates the ratio.
	MinDistanceForGrade float64

	// MinElevationChange is the elevation delta, in meters,
	// below which a change is treated as sensor noise rather than slope.
	MinElevationChange float64

	// SmoothingWindowSize is the number of most-recent grade results
	// the smoother consults. Bounded above by MaxGradeHistory.
	SmoothingWindowSize int

	// MaxGradePercent hard-clamps reported grade.
	// Guards against gross outliers and GPS teleportation spikes.
	MaxGradePercent float64

	// GradeNoiseThreshold is the minimum elevation change, in meters,
	// the gain/loss accumulator counts as real climbing or descending.
	// Typically larger than MinElevationChange.
	GradeNoiseThreshold float64
}

// MaxGradeHistory bounds the grade result history, FIFO-evicted.
const MaxGradeHistory = 100

// ConfidenceSaturationDistance is the baseline length, in meters,
// at which distance confidence saturates at 1.0.
const ConfidenceSaturationDistance = 50.0

// PrecisionGradeConfig favors responsiveness and fine resolution.
// Suited to good sky view and frequent fixes; noisier.
var PrecisionGradeConfig = GradeConfig{
	MinDistanceForGrade: 5,
	MinElevationChange:  1.5,
	SmoothingWindowSize: 12,
	MaxGradePercent:     45,
	GradeNoiseThreshold: 2,
}

// BalancedGradeConfig is the default tuning.
var BalancedGradeConfig = GradeConfig{
	MinDistanceForGrade: 10,
	MinElevationChange:  2,
	SmoothingWindowSize: 8,
	MaxGradePercent:     40,
	GradeNoiseThreshold: 3,
}

// PowerSaverGradeConfig expects sparse, lower-quality fixes
// (duty-cycled GPS) and trades latency for stability.
var PowerSaverGradeConfig = GradeConfig{
	MinDistanceForGrade: 25,
	MinElevationChange:  3,
	SmoothingWindowSize: 5,
	MaxGradePercent:     35,
	GradeNoiseThreshold: 5,
}

// GradeConfigNamed returns the preset for a name, falling back to Balanced.
// Recognized names: "precision", "balanced", "powersaver".
func GradeConfigNamed(name string) GradeConfig {
	switch name {
	case "precision":
		return PrecisionGradeConfig
	case "powersaver":
		return PowerSaverGradeConfig
	default:
		return BalancedGradeConfig
	}
}
