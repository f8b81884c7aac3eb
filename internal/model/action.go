package model

// Action is a single escalation instruction for the UI/session layer to
// execute. The engine only emits these; it never renders or redirects itself.
type Action string

const (
	ActionRedirectEmergencyResources Action = "redirect_emergency_resources"
	ActionShowEmergencyOverlay       Action = "show_emergency_overlay"
	ActionBlockConversationalFeature Action = "block_conversational_feature"
	ActionLogSafetyEvent             Action = "log_safety_event"
	ActionShowWarningBanner          Action = "show_warning_banner"
)

// dispatchRank is the fixed priority order for executing actions, most severe
// first, so callers running the list sequentially show the blocking UI before
// anything softer.
var dispatchRank = map[Action]int{
	ActionRedirectEmergencyResources: 0,
	ActionShowEmergencyOverlay:       1,
	ActionBlockConversationalFeature: 2,
	ActionLogSafetyEvent:             3,
	ActionShowWarningBanner:          4,
}

// DispatchRank returns the action's position in the fixed priority order
func (a Action) DispatchRank() int {
	return dispatchRank[a]
}

// IsValid returns true if the action is one of the defined instruction tags
func (a Action) IsValid() bool {
	_, ok := dispatchRank[a]
	return ok
}

// EscalationActions is the action set attached to imminent-risk rules: the
// user's flow is interrupted, conversational features stop, and the UI
// redirects to emergency resources.
func EscalationActions() []Action {
	return []Action{
		ActionShowEmergencyOverlay,
		ActionBlockConversationalFeature,
		ActionLogSafetyEvent,
		ActionRedirectEmergencyResources,
	}
}

// WarningActions is the action set attached to non-imminent triggered rules
func WarningActions() []Action {
	return []Action{
		ActionShowWarningBanner,
		ActionLogSafetyEvent,
	}
}
