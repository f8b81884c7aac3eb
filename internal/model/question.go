package model

// ConditionTag labels a suspected clinical condition, independent of risk
type ConditionTag string

const (
	ConditionDepression       ConditionTag = "depression"
	ConditionAnxiety          ConditionTag = "anxiety"
	ConditionSuicidalIdeation ConditionTag = "suicidal_ideation"
	ConditionSelfHarm         ConditionTag = "self_harm"
	ConditionPsychosis        ConditionTag = "psychosis"
	ConditionSubstanceUse     ConditionTag = "substance_use"
	ConditionInsomnia         ConditionTag = "insomnia"
)

// Question is a screening question from the static question bank. The bank is
// loaded once at process start and never mutated at runtime. Display text is
// bilingual (English/Arabic); only the id and triage metadata matter to the
// engine.
type Question struct {
	ID     string `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	TextAr string `json:"textAr,omitempty" yaml:"textAr,omitempty"`

	// TriageRisk, when set, makes a boolean-true answer to this question an
	// implicit triage rule at that level (unless an explicit rule covers it)
	TriageRisk   RiskLevel `json:"triageRisk,omitempty" yaml:"triageRisk,omitempty"`
	TriageReason string    `json:"triageReason,omitempty" yaml:"triageReason,omitempty"`

	// TriggerCondition, when set, adds the tag to the detected-condition set
	// on a boolean-true answer
	TriggerCondition ConditionTag `json:"triggerCondition,omitempty" yaml:"triggerCondition,omitempty"`
}

// AnswerSet maps question id to the user's boolean response for one screening
// session. The engine never mutates or retains it.
type AnswerSet map[string]bool
