package service

// EscalationNotifier pushes escalation instructions to a user's connected
// session UI (avoids import cycle with the ws transport)
type EscalationNotifier interface {
	NotifyUser(userID string, msgType string, payload interface{})
}
