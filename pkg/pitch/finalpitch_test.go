package pitch

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSampleFinalPitch(t *testing.T) {
	payload := SampleFinalPitch()

	if payload.RoleName != "Data Analyst" {
		t.Errorf("RoleName = %q, want \"Data Analyst\"", payload.RoleName)
	}
	if payload.PitchWordLimit != 650 {
		t.Errorf("PitchWordLimit = %d, want 650", payload.PitchWordLimit)
	}
	if len(payload.StarExamples) != 2 {
		t.Fatalf("got %d STAR examples, want 2", len(payload.StarExamples))
	}
	for i, ex := range payload.StarExamples {
		if len(ex.Action.Steps) != 2 {
			t.Errorf("example %d has %d action steps, want 2", i, len(ex.Action.Steps))
		}
	}
}

func TestFinalPitchWireFormat(t *testing.T) {
	data, err := json.Marshal(SampleFinalPitch())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	body := string(data)

	// The endpoint keys sections by the intake form's question slugs
	wantKeys := []string{
		`"roleName"`,
		`"roleLevel"`,
		`"pitchWordLimit"`,
		`"starExamples"`,
		`"where-and-when-did-this-experience-occur"`,
		`"what-was-your-responsibility-in-addressing-this-issue"`,
		`"what-did-you-specifically-do-in-this-step"`,
		`"what-positive-outcome-did-you-achieve"`,
	}
	for _, key := range wantKeys {
		if !strings.Contains(body, key) {
			t.Errorf("marshalled payload missing key %s", key)
		}
	}
}

func TestActionStepOutcomeOmitted(t *testing.T) {
	step := ActionStep{What: "did a thing", How: "with a tool"}
	data, err := json.Marshal(step)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(data), "what-was-the-outcome-of-this-step-optional") {
		t.Errorf("empty optional outcome should be omitted, got %s", data)
	}
}
