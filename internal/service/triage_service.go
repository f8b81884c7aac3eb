package service

import (
	"mindtriage/internal/model"
	"mindtriage/internal/registry"
)

// TriageService matches screening answers against the rule registry. All
// evaluation is pure and in-memory: no I/O, no retained state, safe to run on
// every submitted answer.
type TriageService struct {
	registry *registry.Registry
}

// NewTriageService creates a new triage service
func NewTriageService(reg *registry.Registry) *TriageService {
	return &TriageService{registry: reg}
}

// EvaluateAll evaluates a complete answer set against every rule in the
// registry. An empty answer set yields risk low with no actions and no reason.
func (s *TriageService) EvaluateAll(answers model.AnswerSet) model.TriageResult {
	var triggered []model.Rule
	for _, rule := range s.registry.Rules() {
		value, answered := answers[rule.QuestionID]
		if answered && rule.Matches(value) {
			triggered = append(triggered, rule)
		}
	}
	return buildResult(triggered)
}

// EvaluateOne evaluates a single (question, value) pair the moment it is
// recorded. Returns nil when the pair matches no rule at all, which means "no
// action needed for this answer" and is distinct from risk low. For any pair
// inside an answer set, the result here agrees rule-by-rule with EvaluateAll
// over that set: both read the same registry entries for the question.
func (s *TriageService) EvaluateOne(questionID string, value bool) *model.TriageResult {
	var triggered []model.Rule
	for _, rule := range s.registry.RulesFor(questionID) {
		if rule.Matches(value) {
			triggered = append(triggered, rule)
		}
	}
	if len(triggered) == 0 {
		return nil
	}
	result := buildResult(triggered)
	return &result
}

// buildResult folds triggered rules into a TriageResult. The final risk is
// the maximum level among them; ties keep the first rule at that level, which
// is the explicit one when both sources cover a question (registry order).
func buildResult(triggered []model.Rule) model.TriageResult {
	result := model.TriageResult{Risk: model.RiskLow}

	seenAction := make(map[model.Action]bool)
	for _, rule := range triggered {
		if rule.Risk.Rank() > result.Risk.Rank() {
			result.Risk = rule.Risk
			result.HighestRiskReason = rule.Reason
		} else if rule.Risk == result.Risk && result.HighestRiskReason == "" {
			result.HighestRiskReason = rule.Reason
		}

		result.Triggered = append(result.Triggered, rule)
		result.TriggeredQuestionIDs = append(result.TriggeredQuestionIDs, rule.QuestionID)

		for _, a := range rule.Actions {
			if !seenAction[a] {
				seenAction[a] = true
				result.Actions = append(result.Actions, a)
			}
		}

		switch rule.Condition {
		case model.ConditionSuicidalIdeation:
			result.HasSuicidalIdeation = true
		case model.ConditionPsychosis:
			result.HasPsychosisIndicators = true
		}
	}

	return result
}
