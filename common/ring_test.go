package common

import (
	"reflect"
	"testing"
)

func TestRingBuffer_AddAndGet(t *testing.T) {
	ringBuffer := NewRingBuffer[int](5)
	ringBuffer.Add(1)
	ringBuffer.Add(2)
	ringBuffer.Add(3)

	expected := []int{1, 2, 3}
	actual := ringBuffer.Get()
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}

	ringBuffer.Add(4)
	ringBuffer.Add(5)
	ringBuffer.Add(6)

	expected = []int{2, 3, 4, 5, 6}
	actual = ringBuffer.Get()
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}
}

func TestRingBuffer_Tail(t *testing.T) {
	ringBuffer := NewRingBuffer[int](5)
	ringBuffer.Add(1)
	ringBuffer.Add(2)
	ringBuffer.Add(3)

	expected := []int{2, 3}
	actual := ringBuffer.Tail(2)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}

	// Tail larger than fill returns everything.
	expected = []int{1, 2, 3}
	actual = ringBuffer.Tail(10)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}

	ringBuffer.Add(4)
	ringBuffer.Add(5)
	ringBuffer.Add(6)

	expected = []int{4, 5, 6}
	actual = ringBuffer.Tail(3)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}
}

func TestRingBuffer_Scan(t *testing.T) {
	ringBuffer := NewRingBuffer[int](3)
	ringBuffer.Add(1)
	ringBuffer.Add(2)
	ringBuffer.Add(3)
	ringBuffer.Add(4)

	expected := []int{2, 3, 4}
	actual := make([]int, 0, 3)
	ringBuffer.Scan(func(in int) bool {
		actual = append(actual, in)
		return true
	})
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}
}

func TestRingBuffer_Len(t *testing.T) {
	ringBuffer := NewRingBuffer[int](3)
	for i := 0; i < 10; i++ {
		ringBuffer.Add(i)
	}
	if ringBuffer.Len() != 3 {
		t.Errorf("Expected 3, but got %d", ringBuffer.Len())
	}
}

func TestRingBuffer_Reset(t *testing.T) {
	ringBuffer := NewRingBuffer[int](3)
	ringBuffer.Add(1)
	ringBuffer.Add(2)
	ringBuffer.Reset()

	if ringBuffer.Len() != 0 {
		t.Errorf("Expected 0, but got %d", ringBuffer.Len())
	}
	if got := ringBuffer.Get(); len(got) != 0 {
		t.Errorf("Expected empty, but got %v", got)
	}

	ringBuffer.Add(9)
	expected := []int{9}
	if got := ringBuffer.Get(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, but got %v", expected, got)
	}
}

func TestRoundToStep(t *testing.T) {
	cases := []struct {
		in, step, want float64
	}{
		{7.3, 0.5, 7.5},
		{7.24, 0.5, 7.0},
		{-7.3, 0.5, -7.5},
		{-7.24, 0.5, -7.0},
		{0.25, 0.5, 0.5},
		{0, 0.5, 0},
		{10.0, 0.5, 10.0},
	}
	for _, c := range cases {
		if got := RoundToStep(c.in, c.step); got != c.want {
			t.Errorf("RoundToStep(%v, %v): expected %v, but got %v", c.in, c.step, c.want, got)
		}
	}
}

func TestDecimalToFixed(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		want float64
	}{
		{12.3456, 1, 12.3},
		{12.35, 1, 12.4},
		{-12.35, 1, -12.4},
		{12.3456, 2, 12.35},
		{7, 1, 7},
	}
	for _, c := range cases {
		if got := DecimalToFixed(c.in, c.prec); got != c.want {
			t.Errorf("DecimalToFixed(%v, %v): expected %v, but got %v", c.in, c.prec, c.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(50, -40, 40); got != 40 {
		t.Errorf("Expected 40, but got %v", got)
	}
	if got := Clamp(-50, -40, 40); got != -40 {
		t.Errorf("Expected -40, but got %v", got)
	}
	if got := Clamp(12, -40, 40); got != 12 {
		t.Errorf("Expected 12, but got %v", got)
	}
}
