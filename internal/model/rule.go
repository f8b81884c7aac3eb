package model

// RuleSource identifies where a triage rule came from
type RuleSource string

const (
	// RuleSourceExplicit is a curated rule from the rule list. Explicit rules
	// take precedence over implicit rules for the same question.
	RuleSourceExplicit RuleSource = "explicit"

	// RuleSourceImplicit is a rule synthesized at startup from triageRisk
	// metadata on a question
	RuleSourceImplicit RuleSource = "implicit"
)

// Rule maps a (question, answer) pair to a risk level and an action set
type Rule struct {
	QuestionID   string     `json:"questionId" yaml:"questionId"`
	TriggerValue bool       `json:"triggerValue" yaml:"triggerValue"`
	Risk         RiskLevel  `json:"riskLevel" yaml:"riskLevel"`
	Reason       string     `json:"reason" yaml:"reason"`
	Actions      []Action   `json:"actions" yaml:"actions"`
	Source       RuleSource `json:"source" yaml:"-"`

	// Condition carries the question's trigger condition so result flags can
	// be derived from rule identity rather than from raw text
	Condition ConditionTag `json:"condition,omitempty" yaml:"-"`
}

// Matches returns true if the given answer triggers this rule. An answer of
// false never triggers a rule defined with triggerValue true, and vice versa.
func (r *Rule) Matches(value bool) bool {
	return value == r.TriggerValue
}
