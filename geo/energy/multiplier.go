/*
Package energy maps terrain grade to metabolic and mechanical cost
multipliers for energy-expenditure models.

Everything here is pure and stateless; callable from any goroutine
without synchronization.
*/
package energy

import "github.com/trailsense/graded/common"

// MinModelGrade and MaxModelGrade bound the validity range of the
// multiplier model. Input outside is clamped silently.
const (
	MinModelGrade = -20.0
	MaxModelGrade = 20.0
)

// Multipliers returns the metabolic and mechanical cost multipliers
// for a grade percentage.
//
// The metabolic curve is piecewise-linear: a shallow slope through
// moderate downhills (some braking cost), a minimum around -10%,
// a steeper rise through uphill grades, and a steepest band past +10%.
// The mechanical multiplier distinguishes eccentric (downhill, 0.7)
// from concentric (level/uphill, 1.0) muscular work.
func Multipliers(gradePercent float64) (metabolic, mechanical float64) {
	g := common.Clamp(gradePercent, MinModelGrade, MaxModelGrade)

	switch {
	case g < -10:
		metabolic = 0.85 + (g+20)*0.007
	case g < 0:
		metabolic = 0.92 + g*0.008
	case g < 10:
		metabolic = 1.0 + g*0.045
	default:
		metabolic = 1.45 + (g-10)*0.065
	}

	mechanical = 1.0
	if g < 0 {
		mechanical = 0.7
	}
	return metabolic, mechanical
}

// ScaleMET applies the metabolic multiplier for a grade to a baseline
// MET rate. Feed it a smoothed grade, not a raw instant one.
func ScaleMET(baseMET, gradePercent float64) float64 {
	metabolic, _ := Multipliers(gradePercent)
	return baseMET * metabolic
}
