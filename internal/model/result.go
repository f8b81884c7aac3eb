package model

// TriageResult is the outcome of one evaluation call. It is ephemeral pure
// data; applying the action list belongs to the UI/session layer.
type TriageResult struct {
	// Risk is the maximum risk level among the triggered rules
	Risk RiskLevel `json:"riskLevel"`

	// Triggered lists the rules that fired, in registry order (explicit
	// before implicit)
	Triggered []Rule `json:"triggeredRules,omitempty"`

	// Actions is the deduplicated union of the triggered rules' action sets,
	// in first-seen order. Dispatch orders it by execution priority.
	Actions []Action `json:"actions,omitempty"`

	// TriggeredQuestionIDs lists the question ids that triggered a rule
	TriggeredQuestionIDs []string `json:"triggeredQuestionIds,omitempty"`

	// HighestRiskReason is the reason of the first rule at the final risk
	// level. Empty when nothing triggered.
	HighestRiskReason string `json:"highestRiskReason,omitempty"`

	HasSuicidalIdeation    bool `json:"hasSuicidalIdeation"`
	HasPsychosisIndicators bool `json:"hasPsychosisIndicators"`
}

// ContactPreference is how the user agreed to be reached for a referral
type ContactPreference string

const (
	ContactPhone ContactPreference = "phone"
	ContactEmail ContactPreference = "email"
	ContactSMS   ContactPreference = "sms"
)

// ReferralOutcome is the engine-visible result of a referral request. The
// referral and alert records themselves live with the external collaborator.
type ReferralOutcome struct {
	// Requested is false when the risk level was below the referral threshold
	// and no outbound call was made
	Requested  bool   `json:"requested"`
	ReferralID string `json:"referralId,omitempty"`
	AlertID    string `json:"alertId,omitempty"`
}
