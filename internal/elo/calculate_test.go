package elo

import (
	"math"
	"testing"
)

func TestExpected(t *testing.T) {
	tests := []struct {
		name string
		ra   float64
		rb   float64
		want float64
	}{
		{
			name: "equal ratings",
			ra:   1000,
			rb:   1000,
			want: 0.5,
		},
		{
			name: "400 points ahead",
			ra:   1400,
			rb:   1000,
			want: 10.0 / 11.0,
		},
		{
			name: "400 points behind",
			ra:   1000,
			rb:   1400,
			want: 1.0 / 11.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expected(tt.ra, tt.rb); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpectedSumsToOne(t *testing.T) {
	pairs := [][2]float64{{1000, 1000}, {1200, 950}, {100, 2400}}
	for _, p := range pairs {
		sum := Expected(p[0], p[1]) + Expected(p[1], p[0])
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("Expected(%v,%v) pair sums to %v, want 1", p[0], p[1], sum)
		}
	}
}

func TestKFactor(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		level  float64
		want   float64
	}{
		{
			name:   "high level hits rating bound",
			rating: 1000,
			level:  20,
			want:   27.5,
		},
		{
			name:   "low rating bound is 20",
			rating: 700,
			level:  28,
			want:   20,
		},
		{
			name:   "low level stays under bound",
			rating: 1500,
			level:  8,
			want:   10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KFactor(tt.rating, tt.level); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("KFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyDelta(t *testing.T) {
	if got := ApplyDelta(1000, -50); got != 950 {
		t.Errorf("ApplyDelta() = %v, want 950", got)
	}
	if got := ApplyDelta(120, -50); got != Floor {
		t.Errorf("ApplyDelta() = %v, want floor %v", got, Floor)
	}
	if got := ApplyDelta(Floor, -1); got != Floor {
		t.Errorf("ApplyDelta() = %v, want floor %v", got, Floor)
	}
}
