package grade

import "testing"

func TestDistanceConfidence(t *testing.T) {
	cases := []struct {
		distance, want float64
	}{
		{0, 0},
		{25, 0.5},
		{50, 1.0},
		{500, 1.0}, // saturates
	}
	for _, c := range cases {
		if got := DistanceConfidence(c.distance); got != c.want {
			t.Errorf("DistanceConfidence(%v): expected %v, but got %v", c.distance, c.want, got)
		}
	}
}

func TestAccuracyConfidence(t *testing.T) {
	cases := []struct {
		vAccuracy, want float64
	}{
		{-1, 0.5}, // unknown
		{0, 1.0},
		{0.5, 1.0},
		{1, 1.0},
		{1.01, 0.8},
		{5, 0.8},
		{7, 0.6},
		{10, 0.6},
		{10.01, 0.3},
		{100, 0.3},
	}
	for _, c := range cases {
		if got := AccuracyConfidence(c.vAccuracy); got != c.want {
			t.Errorf("AccuracyConfidence(%v): expected %v, but got %v", c.vAccuracy, c.want, got)
		}
	}
}

func TestConfidence(t *testing.T) {
	// 50 m baseline, 1 m accuracy: full confidence.
	if got := Confidence(50, 1, 1); got != 1.0 {
		t.Errorf("Expected 1.0, but got %v", got)
	}

	// The worse (larger) of the two accuracies governs.
	if got := Confidence(100, 1, 7); got != 0.6 {
		t.Errorf("Expected 0.6, but got %v", got)
	}
	if got := Confidence(100, 7, 1); got != 0.6 {
		t.Errorf("Expected 0.6, but got %v", got)
	}

	// One unknown, one known: the known (larger) value governs.
	if got := Confidence(100, -1, 7); got != 0.6 {
		t.Errorf("Expected 0.6, but got %v", got)
	}

	// Both unknown.
	if got := Confidence(100, -1, -1); got != 0.5 {
		t.Errorf("Expected 0.5, but got %v", got)
	}

	// Factors multiply.
	if got := Confidence(25, 1, 3); got != 0.5*0.8 {
		t.Errorf("Expected 0.4, but got %v", got)
	}
}
