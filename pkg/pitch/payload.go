// Package pitch assembles the sample payloads the smoke commands send
// to the workflow API and the local finalPitch endpoint: STAR
// behavioural examples, word-count targets, and the version-label
// selection policy.
package pitch

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// DefaultWordLimit is the pitch word limit used by generated sample
// inputs.
const DefaultWordLimit = 500

// ILSValue is a fixed input the workflow template expects. The value
// itself is opaque to this harness.
const ILSValue = "Isssdsd"

// StarExample is the flat behavioural narrative shape the workflow
// API consumes, serialized inside the star_components variable.
type StarExample struct {
	ID        string `json:"id"`
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// SampleStarExample returns a deterministic filler example for the
// given sequence number.
func SampleStarExample(id int) StarExample {
	return StarExample{
		ID:        strconv.Itoa(id),
		Situation: fmt.Sprintf("Test situation location %d\nTest situation challenge %d", id, id),
		Task:      fmt.Sprintf("Test responsibility %d\nTest constraints %d", id, id),
		Action: fmt.Sprintf(
			"Step 1: Test action step 1 for example %d\n"+
				"How: Test methods for step 1, example %d\n"+
				"Outcome: Test outcome for step 1, example %d\n\n"+
				"Step 2: Test action step 2 for example %d\n"+
				"How: Test methods for step 2, example %d\n"+
				"Outcome: Test outcome for step 2, example %d",
			id, id, id, id, id, id),
		Result: fmt.Sprintf("Test positive outcome %d\nTest benefits %d", id, id),
	}
}

// SampleStarExamples returns n filler examples with sequential IDs
// "1".."n".
func SampleStarExamples(n int) []StarExample {
	examples := make([]StarExample, 0, n)
	for i := 1; i <= n; i++ {
		examples = append(examples, SampleStarExample(i))
	}
	return examples
}

// WordCounts splits a pitch word limit across its sections: 10% for
// the introduction, 10% for the conclusion, and the remaining 80%
// divided evenly over the STAR examples. All counts are rounded.
func WordCounts(wordLimit, numExamples int) (star, intro, conclusion int) {
	intro = int(math.Round(float64(wordLimit) * 0.10))
	conclusion = int(math.Round(float64(wordLimit) * 0.10))
	star = int(math.Round(float64(wordLimit) * 0.80 / float64(numExamples)))
	return star, intro, conclusion
}

// VersionLabel maps a STAR example count to the workflow version label
// built for it. Counts outside 2-4 fall back to "v1.2" with ok=false
// so callers can warn; the fallback is deliberate policy, not
// validation.
func VersionLabel(numExamples int) (label string, ok bool) {
	switch numExamples {
	case 2:
		return "v1.2", true
	case 3:
		return "v1.3", true
	case 4:
		return "v1.4", true
	default:
		return "v1.2", false
	}
}

// MarshalStarComponents serializes examples into the JSON string the
// workflow expects in its star_components variable.
func MarshalStarComponents(examples []StarExample) (string, error) {
	data, err := json.Marshal(map[string][]StarExample{"starExamples": examples})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SampleInput builds the input_variables map for a run with n
// generated STAR examples and word counts derived from
// DefaultWordLimit.
func SampleInput(n int) (map[string]string, error) {
	star, intro, conclusion := WordCounts(DefaultWordLimit, n)

	components, err := MarshalStarComponents(SampleStarExamples(n))
	if err != nil {
		return nil, err
	}

	jobDescription := "Role: Software Engineer\n" +
		"Level: Senior\n" +
		"Description: Building scalable web applications using modern frameworks"

	return map[string]string{
		"job_description":       jobDescription,
		"star_components":       components,
		"Star_Word_Count":       strconv.Itoa(star),
		"User_Experience":       "5 years of experience in software development",
		"Intro_Word_Count":      strconv.Itoa(intro),
		"Conclusion_Word_Count": strconv.Itoa(conclusion),
		"ILS":                   ILSValue,
	}, nil
}

// AgentInput is the canned EL2 project-manager scenario used by the
// single-run smoke command. Word counts are fixed rather than derived.
func AgentInput() (map[string]string, error) {
	examples := []StarExample{
		{
			ID:        "1",
			Situation: "At the Department of Finance, we faced significant delays in the rollout of a new budgeting system due to poor vendor coordination.",
			Task:      "As the lead project manager, I needed to restructure the project timeline while maintaining our annual budget cycle requirements.",
			Action:    "I established a cross-functional team, implemented daily standups, and created a risk mitigation framework with clear escalation paths.",
			Result:    "We successfully launched the system two weeks ahead of the revised schedule, with 100% data integrity and positive stakeholder feedback.",
		},
		{
			ID:        "2",
			Situation: "During COVID-19, our team needed to quickly digitize our citizen grant application process while maintaining strict compliance standards.",
			Task:      "I was tasked with leading the transition from paper to digital within 6 weeks to meet government stimulus deadlines.",
			Action:    "I conducted rapid stakeholder analysis, prioritized features based on compliance requirements, and implemented an agile delivery approach with two-week sprints.",
			Result:    "We delivered a secure, compliant digital platform that processed 50,000 applications in the first month, reducing processing time by 80%.",
		},
	}

	components, err := MarshalStarComponents(examples)
	if err != nil {
		return nil, err
	}

	jobDescription := "Role: Senior Project Manager\n" +
		"Level: EL2\n" +
		"Description: Lead complex IT transformation projects\n" +
		"Years of Experience: 8"

	userExperience := "I have led IT modernization projects across three federal agencies over " +
		"the past 8 years. Most recently, at the Department of Infrastructure, I managed a team " +
		"of 15 to implement a new citizen-facing grant management system. I'm skilled in " +
		"stakeholder management, agile methodologies, and navigating complex government " +
		"procurement processes."

	return map[string]string{
		"job_description":       jobDescription,
		"star_components":       components,
		"Star_Word_Count":       "300",
		"User_Experience":       userExperience,
		"Intro_Word_Count":      "200",
		"Conclusion_Word_Count": "200",
		"ILS":                   ILSValue,
	}, nil
}
