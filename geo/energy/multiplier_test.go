package energy

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMultipliers_Metabolic(t *testing.T) {
	cases := []struct {
		grade, want float64
	}{
		{-25, 0.85}, // clamped to -20
		{-20, 0.85},
		{-15, 0.85 + 5*0.007},
		{-11, 0.85 + 9*0.007},
		{-10, 0.92 - 10*0.008}, // band boundary is closed on the right piece
		{-5, 0.92 - 5*0.008},
		{0, 1.0},
		{5, 1.225},
		{10, 1.45},
		{15, 1.775},
		{20, 2.10},
		{25, 2.10}, // clamped to 20
	}
	for _, c := range cases {
		metabolic, _ := Multipliers(c.grade)
		if !almostEqual(metabolic, c.want) {
			t.Errorf("Multipliers(%v): expected metabolic %v, but got %v", c.grade, c.want, metabolic)
		}
	}
}

func TestMultipliers_Mechanical(t *testing.T) {
	downhills := []float64{-0.5, -5, -10, -20, -100}
	for _, g := range downhills {
		if _, mechanical := Multipliers(g); mechanical != 0.7 {
			t.Errorf("Multipliers(%v): expected mechanical 0.7, but got %v", g, mechanical)
		}
	}
	flats := []float64{0, 0.5, 10, 20, 100}
	for _, g := range flats {
		if _, mechanical := Multipliers(g); mechanical != 1.0 {
			t.Errorf("Multipliers(%v): expected mechanical 1.0, but got %v", g, mechanical)
		}
	}
}

func TestMultipliers_Pure(t *testing.T) {
	m1, k1 := Multipliers(7.5)
	for i := 0; i < 100; i++ {
		m2, k2 := Multipliers(7.5)
		if m1 != m2 || k1 != k2 {
			t.Fatalf("Expected identical outputs, but got (%v,%v) then (%v,%v)", m1, k1, m2, k2)
		}
	}
}

func TestScaleMET(t *testing.T) {
	// Flat ground scales by exactly 1.
	if got := ScaleMET(7.0, 0); got != 7.0 {
		t.Errorf("Expected 7.0, but got %v", got)
	}
	metabolic, _ := Multipliers(10)
	if got := ScaleMET(7.0, 10); !almostEqual(got, 7.0*metabolic) {
		t.Errorf("Expected %v, but got %v", 7.0*metabolic, got)
	}
}
