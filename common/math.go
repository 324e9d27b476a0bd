package common

import "math"

// https://stackoverflow.com/questions/18390266/how-can-we-truncate-float64-type-to-a-particular-precision
func Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func DecimalToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(Round(num*output)) / output
}

// RoundToStep rounds num to the nearest multiple of step, e.g.
// RoundToStep(7.3, 0.5) == 7.5. Step must be positive.
func RoundToStep(num, step float64) float64 {
	return float64(Round(num/step)) * step
}

// Clamp bounds num to [min, max].
func Clamp(num, min, max float64) float64 {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
