package ui

import "testing"

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInCircle(t *testing.T) {
	if !inCircle(10, 10, 10, 10, 1) {
		t.Error("centre should be inside")
	}
	if !inCircle(13, 14, 10, 10, 5) {
		t.Error("point on the edge should be inside")
	}
	if inCircle(16, 10, 10, 10, 5) {
		t.Error("point past the radius should be outside")
	}
}
