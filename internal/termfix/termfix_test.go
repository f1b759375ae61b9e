// ABOUTME: Tests for COLORFGBG background detection
// ABOUTME: Table-driven over common terminal values

package termfix

import "testing"

func TestDarkBackground(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"15;0", true},
		{"0;15", false},
		{"0;7", false},
		{"12;8", true},
		{"0;default;15", false},
		{"15;default;0", true},
		{"garbage", true},
	}
	for _, tt := range tests {
		if got := DarkBackground(tt.value); got != tt.want {
			t.Errorf("DarkBackground(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
