// Package registry holds the unified triage Rule Registry: the curated
// explicit rules merged at startup with implicit rules derived from question
// metadata, validated once, immutable afterwards.
package registry

import (
	"fmt"

	"mindtriage/internal/model"
)

// Registry is the immutable, validated rule set for one process lifetime
type Registry struct {
	questions  []model.Question
	byID       map[string]*model.Question
	rules      []model.Rule
	byQuestion map[string][]model.Rule
}

// New builds a registry from the question bank and the explicit rule list.
// Explicit rules come first, in curated order; implicit rules are synthesized
// afterwards, in bank order, for questions with triageRisk metadata that no
// explicit rule already covers. Any malformed input is a configuration error:
// the engine refuses to start rather than silently skip rules.
func New(questions []model.Question, explicit []model.Rule) (*Registry, error) {
	r := &Registry{
		byID:       make(map[string]*model.Question, len(questions)),
		byQuestion: make(map[string][]model.Rule),
	}

	seenID := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question bank: question with empty id")
		}
		if seenID[q.ID] {
			return nil, fmt.Errorf("question bank: duplicate question id %q", q.ID)
		}
		if q.TriageRisk != "" && !q.TriageRisk.IsValid() {
			return nil, fmt.Errorf("question %q: invalid triage risk %q", q.ID, q.TriageRisk)
		}
		seenID[q.ID] = true
		r.questions = append(r.questions, q)
	}
	for i := range r.questions {
		r.byID[r.questions[i].ID] = &r.questions[i]
	}

	seen := make(map[string]map[bool]bool)
	for i, rule := range explicit {
		q, ok := r.byID[rule.QuestionID]
		if !ok {
			return nil, fmt.Errorf("rule %d references unknown question %q", i, rule.QuestionID)
		}
		if !rule.Risk.IsValid() {
			return nil, fmt.Errorf("rule for question %q: invalid risk level %q", rule.QuestionID, rule.Risk)
		}
		if rule.Reason == "" {
			return nil, fmt.Errorf("rule for question %q: empty reason", rule.QuestionID)
		}
		if seen[rule.QuestionID] == nil {
			seen[rule.QuestionID] = make(map[bool]bool)
		}
		if seen[rule.QuestionID][rule.TriggerValue] {
			return nil, fmt.Errorf("duplicate rule for question %q, trigger value %t", rule.QuestionID, rule.TriggerValue)
		}
		seen[rule.QuestionID][rule.TriggerValue] = true

		rule.Source = model.RuleSourceExplicit
		rule.Condition = q.TriggerCondition
		if err := validateActions(rule); err != nil {
			return nil, err
		}
		r.addRule(rule)
	}

	// Implicit rules: question triageRisk metadata, skipped entirely when an
	// explicit rule covers the question (explicit wins, no merging)
	for _, q := range r.questions {
		if q.TriageRisk == "" || seen[q.ID] != nil {
			continue
		}
		reason := q.TriageReason
		if reason == "" {
			reason = fmt.Sprintf("answer to %q indicates %s risk", q.ID, q.TriageRisk)
		}
		actions := model.WarningActions()
		if q.TriageRisk == model.RiskImminent {
			actions = model.EscalationActions()
		}
		r.addRule(model.Rule{
			QuestionID:   q.ID,
			TriggerValue: true,
			Risk:         q.TriageRisk,
			Reason:       reason,
			Actions:      actions,
			Source:       model.RuleSourceImplicit,
			Condition:    q.TriggerCondition,
		})
	}

	return r, nil
}

// validateActions enforces the safety contract on the rule set itself:
// imminent rules must block conversational features and redirect to emergency
// resources; low and moderate rules must do neither.
func validateActions(rule model.Rule) error {
	has := make(map[model.Action]bool, len(rule.Actions))
	for _, a := range rule.Actions {
		if !a.IsValid() {
			return fmt.Errorf("rule for question %q: unknown action %q", rule.QuestionID, a)
		}
		has[a] = true
	}
	switch rule.Risk {
	case model.RiskImminent:
		if !has[model.ActionBlockConversationalFeature] || !has[model.ActionRedirectEmergencyResources] {
			return fmt.Errorf("rule for question %q: imminent risk requires block and redirect actions", rule.QuestionID)
		}
	case model.RiskLow, model.RiskModerate:
		if has[model.ActionBlockConversationalFeature] || has[model.ActionRedirectEmergencyResources] {
			return fmt.Errorf("rule for question %q: %s risk must not block or redirect", rule.QuestionID, rule.Risk)
		}
	}
	return nil
}

func (r *Registry) addRule(rule model.Rule) {
	r.rules = append(r.rules, rule)
	r.byQuestion[rule.QuestionID] = append(r.byQuestion[rule.QuestionID], rule)
}

// Rules returns all rules in evaluation order: explicit first, then implicit
func (r *Registry) Rules() []model.Rule {
	return r.rules
}

// RulesFor returns the rules covering a single question
func (r *Registry) RulesFor(questionID string) []model.Rule {
	return r.byQuestion[questionID]
}

// Questions returns the question bank in its original order
func (r *Registry) Questions() []model.Question {
	return r.questions
}

// Question looks up a question by id
func (r *Registry) Question(id string) (*model.Question, bool) {
	q, ok := r.byID[id]
	return q, ok
}
