package types

import "testing"

func TestRoadmapProgress(t *testing.T) {
	step := func(status StepStatus) RoadmapStep { return RoadmapStep{Status: status} }

	tests := []struct {
		name  string
		steps []RoadmapStep
		want  float64
	}{
		{name: "no steps", steps: nil, want: 0},
		{name: "none completed", steps: []RoadmapStep{step(StepStatusPending), step(StepStatusInProgress)}, want: 0},
		{name: "half completed", steps: []RoadmapStep{step(StepStatusCompleted), step(StepStatusPending)}, want: 0.5},
		{name: "all completed", steps: []RoadmapStep{step(StepStatusCompleted), step(StepStatusCompleted)}, want: 1},
		{name: "skipped does not count", steps: []RoadmapStep{step(StepStatusCompleted), step(StepStatusSkipped), step(StepStatusPending), step(StepStatusPending)}, want: 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Roadmap{Steps: tc.steps}
			if got := r.Progress(); got != tc.want {
				t.Fatalf("Progress() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseStepStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want StepStatus
		ok   bool
	}{
		{"Pending", StepStatusPending, true},
		{"In Progress", StepStatusInProgress, true},
		{"Completed", StepStatusCompleted, true},
		{"Skipped", StepStatusSkipped, true},
		{"completed", "", false},
		{"Done", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseStepStatus(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseStepStatus(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
