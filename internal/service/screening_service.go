package service

import (
	"context"
	"log"

	"mindtriage/internal/model"
)

// ScreeningService orchestrates one evaluation pass: triage, condition
// detection, risk aggregation, dispatch, and the best-effort referral. Local
// escalation is always decided and returned before any network I/O starts;
// the product's safety guarantee does not depend on the referral collaborator
// being reachable.
type ScreeningService struct {
	triage     *TriageService
	conditions *ConditionService
	risk       *RiskService
	referral   *ReferralClient
	notifier   EscalationNotifier
}

// NewScreeningService creates a new screening service
func NewScreeningService(triage *TriageService, conditions *ConditionService, risk *RiskService, referral *ReferralClient) *ScreeningService {
	return &ScreeningService{
		triage:     triage,
		conditions: conditions,
		risk:       risk,
		referral:   referral,
	}
}

// SetNotifier sets the escalation push channel for connected session UIs
func (s *ScreeningService) SetNotifier(n EscalationNotifier) {
	s.notifier = n
}

// AnswerDecision is the real-time outcome for a single submitted answer
type AnswerDecision struct {
	Triggered bool                `json:"triggered"`
	Result    *model.TriageResult `json:"result,omitempty"`
	Actions   []model.Action      `json:"actions,omitempty"`
}

// ScreeningDecision is the end-of-screening outcome
type ScreeningDecision struct {
	Result          model.TriageResult    `json:"result"`
	Conditions      []model.ConditionTag  `json:"detectedConditions,omitempty"`
	FunctionalLevel model.FunctionalLevel `json:"functionalLevel"`
	OverallRisk     model.RiskLevel       `json:"overallRisk"`
	Actions         []model.Action        `json:"actions,omitempty"`
}

// SubmitAnswer evaluates a single (question, value) pair the instant it is
// recorded. Triggered is false when the pair matches no rule, which is
// distinct from a triggered rule at risk low.
func (s *ScreeningService) SubmitAnswer(ctx context.Context, userID, questionID string, value bool) *AnswerDecision {
	result := s.triage.EvaluateOne(questionID, value)
	if result == nil {
		return &AnswerDecision{Triggered: false}
	}

	decision := &AnswerDecision{
		Triggered: true,
		Result:    result,
		Actions:   Dispatch(*result),
	}

	s.pushEscalation(userID, decision.Actions, result.Risk)
	s.requestReferral(userID, result.Risk, result.HighestRiskReason, nil, nil)

	return decision
}

// Complete evaluates a finished screening: the full answer set plus the
// functional-impairment score. Returns an error only for an out-of-range
// score; evaluation itself is total.
func (s *ScreeningService) Complete(ctx context.Context, userID string, answers model.AnswerSet, functionalScore int, contact []model.ContactPreference) (*ScreeningDecision, error) {
	result := s.triage.EvaluateAll(answers)
	conditions := s.conditions.DetectConditions(answers)

	level, err := s.risk.FunctionalLevel(functionalScore)
	if err != nil {
		return nil, err
	}

	decision := &ScreeningDecision{
		Result:          result,
		Conditions:      conditions,
		FunctionalLevel: level,
		OverallRisk:     s.risk.OverallRisk(result.Risk, level),
		Actions:         Dispatch(result),
	}

	s.pushEscalation(userID, decision.Actions, decision.OverallRisk)
	s.requestReferral(userID, decision.OverallRisk, result.HighestRiskReason, conditions, contact)

	return decision, nil
}

// escalationMessage is the payload pushed to the session UI
type escalationMessage struct {
	RiskLevel model.RiskLevel `json:"riskLevel"`
	Actions   []model.Action  `json:"actions"`
}

func (s *ScreeningService) pushEscalation(userID string, actions []model.Action, risk model.RiskLevel) {
	if s.notifier == nil || len(actions) == 0 {
		return
	}
	s.notifier.NotifyUser(userID, "escalation", &escalationMessage{
		RiskLevel: risk,
		Actions:   actions,
	})
}

// requestReferral fires the referral call in the background, after the local
// decision is already final. The call runs on its own context: the user
// navigating away abandons nothing that matters, and a failure is logged but
// never surfaced to the user.
func (s *ScreeningService) requestReferral(userID string, risk model.RiskLevel, reason string, conditions []model.ConditionTag, contact []model.ContactPreference) {
	if s.referral == nil || !risk.AtLeast(model.RiskHigh) {
		return
	}
	go func() {
		if _, err := s.referral.RequestReferral(context.Background(), userID, risk, reason, conditions, contact); err != nil {
			log.Printf("referral request for user %s failed: %v", userID, err)
		}
	}()
}
