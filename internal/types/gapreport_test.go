package types

import "testing"

func TestSkillGapGap(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		required float64
		want     float64
	}{
		{name: "positive gap", current: 30, required: 80, want: 50},
		{name: "exactly met", current: 70, required: 70, want: 0},
		{name: "overshoot clamps to zero", current: 90, required: 60, want: 0},
		{name: "fractional", current: 42.5, required: 60, want: 17.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gap := SkillGap{CurrentLevel: tc.current, RequiredLevel: tc.required}
			if got := gap.Gap(); got != tc.want {
				t.Fatalf("Gap() = %v, want %v", got, tc.want)
			}
		})
	}
}
