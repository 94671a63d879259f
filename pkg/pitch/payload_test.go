package pitch

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestWordCounts(t *testing.T) {
	tests := []struct {
		wordLimit   int
		numExamples int
		star        int
		intro       int
		conclusion  int
	}{
		{500, 2, 200, 50, 50},
		{500, 3, 133, 50, 50},
		{500, 4, 100, 50, 50},
		{650, 2, 260, 65, 65},
		{1000, 3, 267, 100, 100},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_words_%d_examples", tt.wordLimit, tt.numExamples), func(t *testing.T) {
			star, intro, conclusion := WordCounts(tt.wordLimit, tt.numExamples)
			if star != tt.star {
				t.Errorf("star = %d, want %d", star, tt.star)
			}
			if intro != tt.intro {
				t.Errorf("intro = %d, want %d", intro, tt.intro)
			}
			if conclusion != tt.conclusion {
				t.Errorf("conclusion = %d, want %d", conclusion, tt.conclusion)
			}
		})
	}
}

func TestWordCountsIntroIndependentOfCount(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7} {
		_, intro, conclusion := WordCounts(500, n)
		if intro != 50 || conclusion != 50 {
			t.Errorf("n=%d: intro/conclusion = %d/%d, want 50/50", n, intro, conclusion)
		}
	}
}

func TestVersionLabel(t *testing.T) {
	tests := []struct {
		numExamples int
		label       string
		ok          bool
	}{
		{2, "v1.2", true},
		{3, "v1.3", true},
		{4, "v1.4", true},
		{1, "v1.2", false},
		{5, "v1.2", false},
		{0, "v1.2", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("count_%d", tt.numExamples), func(t *testing.T) {
			label, ok := VersionLabel(tt.numExamples)
			if label != tt.label {
				t.Errorf("label = %q, want %q", label, tt.label)
			}
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestSampleStarExamplesSequentialIDs(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		examples := SampleStarExamples(n)
		if len(examples) != n {
			t.Fatalf("n=%d: got %d examples", n, len(examples))
		}
		for i, ex := range examples {
			want := fmt.Sprintf("%d", i+1)
			if ex.ID != want {
				t.Errorf("n=%d: example %d has ID %q, want %q", n, i, ex.ID, want)
			}
			if ex.Situation == "" || ex.Task == "" || ex.Action == "" || ex.Result == "" {
				t.Errorf("n=%d: example %d has empty fields", n, i)
			}
		}
	}
}

func TestSampleInput(t *testing.T) {
	input, err := SampleInput(3)
	if err != nil {
		t.Fatalf("SampleInput(3) error: %v", err)
	}

	// 500 * 0.8 / 3 = 133 rounded
	if input["Star_Word_Count"] != "133" {
		t.Errorf("Star_Word_Count = %q, want \"133\"", input["Star_Word_Count"])
	}
	if input["Intro_Word_Count"] != "50" {
		t.Errorf("Intro_Word_Count = %q, want \"50\"", input["Intro_Word_Count"])
	}
	if input["Conclusion_Word_Count"] != "50" {
		t.Errorf("Conclusion_Word_Count = %q, want \"50\"", input["Conclusion_Word_Count"])
	}
	if input["ILS"] != ILSValue {
		t.Errorf("ILS = %q, want %q", input["ILS"], ILSValue)
	}

	// star_components must be a JSON string wrapping the examples
	var components struct {
		StarExamples []StarExample `json:"starExamples"`
	}
	if err := json.Unmarshal([]byte(input["star_components"]), &components); err != nil {
		t.Fatalf("star_components is not valid JSON: %v", err)
	}
	if len(components.StarExamples) != 3 {
		t.Errorf("star_components holds %d examples, want 3", len(components.StarExamples))
	}
}

func TestAgentInput(t *testing.T) {
	input, err := AgentInput()
	if err != nil {
		t.Fatalf("AgentInput() error: %v", err)
	}

	// The single-run scenario uses fixed word counts
	if input["Star_Word_Count"] != "300" {
		t.Errorf("Star_Word_Count = %q, want \"300\"", input["Star_Word_Count"])
	}
	if input["Intro_Word_Count"] != "200" || input["Conclusion_Word_Count"] != "200" {
		t.Errorf("intro/conclusion = %q/%q, want \"200\"/\"200\"",
			input["Intro_Word_Count"], input["Conclusion_Word_Count"])
	}

	var components struct {
		StarExamples []StarExample `json:"starExamples"`
	}
	if err := json.Unmarshal([]byte(input["star_components"]), &components); err != nil {
		t.Fatalf("star_components is not valid JSON: %v", err)
	}
	if len(components.StarExamples) != 2 {
		t.Errorf("star_components holds %d examples, want 2", len(components.StarExamples))
	}
	if components.StarExamples[0].ID != "1" || components.StarExamples[1].ID != "2" {
		t.Errorf("example IDs = %q, %q, want \"1\", \"2\"",
			components.StarExamples[0].ID, components.StarExamples[1].ID)
	}

	for _, key := range []string{"job_description", "User_Experience", "ILS"} {
		if input[key] == "" {
			t.Errorf("input %q is empty", key)
		}
	}
}
