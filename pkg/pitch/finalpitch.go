package pitch

// FinalPitchRequest matches the /api/finalPitch schema. Unlike the
// workflow input, STAR examples here are structured: each section is
// keyed by the intake form's question slugs rather than free text.
type FinalPitchRequest struct {
	RoleName           string              `json:"roleName"`
	RoleLevel          string              `json:"roleLevel"`
	PitchWordLimit     int                 `json:"pitchWordLimit"`
	RelevantExperience string              `json:"relevantExperience"`
	RoleDescription    string              `json:"roleDescription"`
	StarExamples       []StructuredExample `json:"starExamples"`
}

// StructuredExample is the nested STAR variant. The json keys mirror
// the form questions verbatim, which is why they are so long.
type StructuredExample struct {
	Situation SituationSection `json:"situation"`
	Task      TaskSection      `json:"task"`
	Action    ActionSection    `json:"action"`
	Result    ResultSection    `json:"result"`
}

type SituationSection struct {
	WhereAndWhen string `json:"where-and-when-did-this-experience-occur"`
	Challenge    string `json:"briefly-describe-the-situation-or-challenge-you-faced"`
}

type TaskSection struct {
	Responsibility string `json:"what-was-your-responsibility-in-addressing-this-issue"`
	Constraints    string `json:"what-constraints-or-requirements-did-you-need-to-consider"`
}

type ActionSection struct {
	Steps []ActionStep `json:"steps"`
}

type ActionStep struct {
	What    string `json:"what-did-you-specifically-do-in-this-step"`
	How     string `json:"how-did-you-do-it-tools-methods-or-skills"`
	Outcome string `json:"what-was-the-outcome-of-this-step-optional,omitempty"`
}

type ResultSection struct {
	Outcome string `json:"what-positive-outcome-did-you-achieve"`
	Benefit string `json:"how-did-this-outcome-benefit-your-team-stakeholders-or-organization"`
}

// SampleFinalPitch returns the canned Data Analyst payload with two
// structured STAR examples, one with step outcomes and one without.
func SampleFinalPitch() FinalPitchRequest {
	return FinalPitchRequest{
		RoleName:       "Data Analyst",
		RoleLevel:      "APS6",
		PitchWordLimit: 650,
		RelevantExperience: "• 5 years analysing large datasets in the Australian Public Service\n" +
			"• Advanced SQL, Python (pandas), and Tableau\n" +
			"• Led analytics initiatives that improved decision-making across multiple divisions\n",
		RoleDescription: "Provide data-driven insights for policy teams.",
		StarExamples: []StructuredExample{
			{
				Situation: SituationSection{
					WhereAndWhen: "Dept. of Health, 2022",
					Challenge:    "Fragmented COVID-19 testing data made reporting slow and error-prone.",
				},
				Task: TaskSection{
					Responsibility: "Consolidate disparate data sources into a single analysis pipeline.",
					Constraints:    "Daily delivery deadlines and strict privacy rules.",
				},
				Action: ActionSection{
					Steps: []ActionStep{
						{
							What:    "Designed a schema that standardised test-result formats.",
							How:     "Used Python/pandas; wrote ETL jobs.",
							Outcome: "Reduced manual data cleaning by 80%.",
						},
						{
							What:    "Automated dashboard updates in Tableau.",
							How:     "Leveraged Tableau REST API.",
							Outcome: "Same-day reporting for executives.",
						},
					},
				},
				Result: ResultSection{
					Outcome: "Cut reporting time from 24h to 30min.",
					Benefit: "Enabled faster policy adjustments during pandemic peaks.",
				},
			},
			{
				Situation: SituationSection{
					WhereAndWhen: "Dept. of Education, 2021",
					Challenge:    "Low survey response rates from regional schools.",
				},
				Task: TaskSection{
					Responsibility: "Boost participation to obtain statistically significant data.",
					Constraints:    "Limited budget and tight 4-week deadline.",
				},
				Action: ActionSection{
					Steps: []ActionStep{
						{
							What: "Performed logistic-regression analysis to identify key barriers.",
							How:  "R + tidyverse.",
						},
						{
							What: "Created targeted email templates for under-represented groups.",
							How:  "Used Mailchimp A/B testing.",
						},
					},
				},
				Result: ResultSection{
					Outcome: "Response rate climbed from 48% to 78%.",
					Benefit: "Provided reliable data that informed $12M in funding decisions.",
				},
			},
		},
	}
}
