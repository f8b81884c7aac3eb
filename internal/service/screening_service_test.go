package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindtriage/config"
	"mindtriage/internal/model"
	"mindtriage/internal/registry"
)

type fakeNotifier struct {
	mu       sync.Mutex
	userIDs  []string
	msgTypes []string
	payloads []interface{}
}

func (f *fakeNotifier) NotifyUser(userID string, msgType string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userIDs = append(f.userIDs, userID)
	f.msgTypes = append(f.msgTypes, msgType)
	f.payloads = append(f.payloads, payload)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.userIDs)
}

func newScreening(t *testing.T, referral *ReferralClient) (*ScreeningService, *fakeNotifier) {
	t.Helper()
	reg, err := registry.DefaultBank()
	require.NoError(t, err)

	svc := NewScreeningService(
		NewTriageService(reg),
		NewConditionService(reg),
		NewRiskService(config.DefaultFunctionalBands()),
		referral,
	)
	notifier := &fakeNotifier{}
	svc.SetNotifier(notifier)
	return svc, notifier
}

func TestSubmitAnswerNoMatch(t *testing.T) {
	svc, notifier := newScreening(t, nil)

	decision := svc.SubmitAnswer(context.Background(), "u1", "feeling_depressed", true)

	assert.False(t, decision.Triggered)
	assert.Nil(t, decision.Result)
	assert.Empty(t, decision.Actions)
	assert.Zero(t, notifier.count(), "untriggered answers push nothing")
}

func TestSubmitAnswerTriggered(t *testing.T) {
	svc, notifier := newScreening(t, nil)

	decision := svc.SubmitAnswer(context.Background(), "u1", "ending_life", true)

	require.True(t, decision.Triggered)
	require.NotNil(t, decision.Result)
	assert.Equal(t, model.RiskImminent, decision.Result.Risk)

	// Dispatch order: most severe UI first
	require.NotEmpty(t, decision.Actions)
	assert.Equal(t, model.ActionRedirectEmergencyResources, decision.Actions[0])

	require.Equal(t, 1, notifier.count())
	assert.Equal(t, "u1", notifier.userIDs[0])
	assert.Equal(t, "escalation", notifier.msgTypes[0])
}

func TestCompleteFullScreening(t *testing.T) {
	svc, notifier := newScreening(t, nil)

	decision, err := svc.Complete(context.Background(), "u1", model.AnswerSet{
		"hearing_voices":    true,
		"feeling_depressed": true,
	}, 30, nil)

	require.NoError(t, err)
	assert.Equal(t, model.RiskHigh, decision.Result.Risk)
	assert.Equal(t, model.FunctionalModerate, decision.FunctionalLevel)
	assert.Equal(t, model.RiskHigh, decision.OverallRisk)
	assert.ElementsMatch(t, []model.ConditionTag{model.ConditionPsychosis, model.ConditionDepression}, decision.Conditions)
	assert.Equal(t, []model.Action{model.ActionLogSafetyEvent, model.ActionShowWarningBanner}, decision.Actions)
	assert.Equal(t, 1, notifier.count())
}

func TestCompleteSevereFunctionalBumpsModerate(t *testing.T) {
	svc, _ := newScreening(t, nil)

	decision, err := svc.Complete(context.Background(), "u1", model.AnswerSet{"hopelessness": true}, 5, nil)

	require.NoError(t, err)
	assert.Equal(t, model.RiskModerate, decision.Result.Risk)
	assert.Equal(t, model.FunctionalSevere, decision.FunctionalLevel)
	assert.Equal(t, model.RiskHigh, decision.OverallRisk)
}

func TestCompleteInvalidFunctionalScore(t *testing.T) {
	svc, _ := newScreening(t, nil)

	_, err := svc.Complete(context.Background(), "u1", model.AnswerSet{}, 99, nil)
	assert.Error(t, err)
}

func TestCompleteFiresReferralForImminent(t *testing.T) {
	called := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called <- struct{}{}
		w.Write([]byte(`{"referralId":"ref_1","alertId":"al_1"}`))
	}))
	defer srv.Close()

	svc, _ := newScreening(t, newReferralClient(srv.URL))

	decision, err := svc.Complete(context.Background(), "u1", model.AnswerSet{"ending_life": true}, 20, []model.ContactPreference{model.ContactPhone})
	require.NoError(t, err)
	assert.Equal(t, model.RiskImminent, decision.OverallRisk)

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("referral collaborator was never called for an imminent result")
	}
}

func TestCompleteDoesNotWaitOnReferral(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"referralId":"ref_1","alertId":"al_1"}`))
	}))
	defer srv.Close()
	defer close(release)

	svc, _ := newScreening(t, newReferralClient(srv.URL))

	start := time.Now()
	decision, err := svc.Complete(context.Background(), "u1", model.AnswerSet{"ending_life": true}, 20, nil)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, model.RiskImminent, decision.OverallRisk)
	assert.Less(t, elapsed, 500*time.Millisecond, "local decision must not wait on the referral call")
}

func TestCompleteReferralFailureLeavesDecisionIntact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc, notifier := newScreening(t, newReferralClient(srv.URL))

	decision, err := svc.Complete(context.Background(), "u1", model.AnswerSet{"ending_life": true}, 20, nil)
	require.NoError(t, err, "referral failure is never surfaced to the user")

	assert.Equal(t, model.RiskImminent, decision.OverallRisk)
	assert.Contains(t, decision.Actions, model.ActionShowEmergencyOverlay)
	assert.Contains(t, decision.Actions, model.ActionBlockConversationalFeature)
	assert.Equal(t, 1, notifier.count(), "escalation push happens regardless of referral outcome")
}

func TestCompleteNoReferralBelowHigh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("referral collaborator called for a moderate result")
	}))
	defer srv.Close()

	svc, _ := newScreening(t, newReferralClient(srv.URL))

	decision, err := svc.Complete(context.Background(), "u1", model.AnswerSet{"hopelessness": true}, 30, nil)
	require.NoError(t, err)
	assert.Equal(t, model.RiskModerate, decision.OverallRisk)

	// Give a wrongly fired goroutine a moment to hit the test server
	time.Sleep(100 * time.Millisecond)
}
