package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindtriage/internal/model"
	"mindtriage/internal/registry"
)

func newTriage(t *testing.T) *TriageService {
	t.Helper()
	reg, err := registry.DefaultBank()
	require.NoError(t, err)
	return NewTriageService(reg)
}

func TestEvaluateAllEmptyAnswers(t *testing.T) {
	result := newTriage(t).EvaluateAll(model.AnswerSet{})

	assert.Equal(t, model.RiskLow, result.Risk)
	assert.Empty(t, result.Actions)
	assert.Empty(t, result.Triggered)
	assert.Empty(t, result.HighestRiskReason)
	assert.False(t, result.HasSuicidalIdeation)
	assert.False(t, result.HasPsychosisIndicators)
}

func TestEvaluateAllSuicidalIdeation(t *testing.T) {
	result := newTriage(t).EvaluateAll(model.AnswerSet{"ending_life": true})

	assert.Equal(t, model.RiskImminent, result.Risk)
	assert.True(t, result.HasSuicidalIdeation)
	assert.Equal(t, "Active suicidal ideation reported", result.HighestRiskReason)
	assert.Contains(t, result.Actions, model.ActionShowEmergencyOverlay)
	assert.Contains(t, result.Actions, model.ActionBlockConversationalFeature)
	assert.Contains(t, result.Actions, model.ActionRedirectEmergencyResources)
	assert.Contains(t, result.Actions, model.ActionLogSafetyEvent)
	assert.Equal(t, []string{"ending_life"}, result.TriggeredQuestionIDs)
}

func TestEvaluateAllPsychosisIndicators(t *testing.T) {
	answers := model.AnswerSet{
		"hearing_voices":    true,
		"ending_life":       false,
		"self_harm":         false,
		"hopelessness":      false,
		"feeling_depressed": false,
		"substance_use":     false,
	}
	result := newTriage(t).EvaluateAll(answers)

	assert.Equal(t, model.RiskHigh, result.Risk)
	assert.True(t, result.HasPsychosisIndicators)
	assert.False(t, result.HasSuicidalIdeation)
	assert.ElementsMatch(t,
		[]model.Action{model.ActionShowWarningBanner, model.ActionLogSafetyEvent},
		result.Actions,
		"non-imminent result must not block or redirect")
}

func TestFalseAnswersNeverTrigger(t *testing.T) {
	svc := newTriage(t)

	answers := model.AnswerSet{}
	reg, err := registry.DefaultBank()
	require.NoError(t, err)
	for _, q := range reg.Questions() {
		answers[q.ID] = false
	}

	result := svc.EvaluateAll(answers)
	assert.Equal(t, model.RiskLow, result.Risk, "absence of risk answers is not risk")
	assert.Empty(t, result.Triggered)
}

func TestEvaluateAllTakesMaximumRisk(t *testing.T) {
	result := newTriage(t).EvaluateAll(model.AnswerSet{
		"hopelessness":   true, // moderate
		"ending_life":    true, // imminent
		"hearing_voices": true, // high
	})

	assert.Equal(t, model.RiskImminent, result.Risk)
	assert.Equal(t, "Active suicidal ideation reported", result.HighestRiskReason,
		"reason must come from the rule that set the final level")
	assert.Len(t, result.Triggered, 3)
}

func TestHighestRiskReasonTieBreaksOnRegistryOrder(t *testing.T) {
	// Two high-risk rules; the first one in registry order wins the reason
	reg, err := registry.New([]model.Question{
		{ID: "a", Text: "x", TriageRisk: model.RiskHigh, TriageReason: "first high"},
		{ID: "b", Text: "x", TriageRisk: model.RiskHigh, TriageReason: "second high"},
	}, nil)
	require.NoError(t, err)

	result := NewTriageService(reg).EvaluateAll(model.AnswerSet{"a": true, "b": true})
	assert.Equal(t, model.RiskHigh, result.Risk)
	assert.Equal(t, "first high", result.HighestRiskReason)
}

func TestEvaluateOneNoMatchReturnsNil(t *testing.T) {
	svc := newTriage(t)

	// feeling_depressed has a condition tag but no triage rule
	assert.Nil(t, svc.EvaluateOne("feeling_depressed", true))
	// a false answer to a triggerValue=true rule matches nothing
	assert.Nil(t, svc.EvaluateOne("ending_life", false))
	// unknown question matches nothing
	assert.Nil(t, svc.EvaluateOne("unknown_question", true))
}

func TestEvaluateOneMatch(t *testing.T) {
	result := newTriage(t).EvaluateOne("hearing_voices", true)

	require.NotNil(t, result)
	assert.Equal(t, model.RiskHigh, result.Risk)
	assert.True(t, result.HasPsychosisIndicators)
}

// Incremental and batch evaluation must agree: for any single pair inside an
// answer set, EvaluateOne never reports lower risk than EvaluateAll
// attributes to that set.
func TestEvaluateOneConsistentWithEvaluateAll(t *testing.T) {
	reg, err := registry.DefaultBank()
	require.NoError(t, err)
	svc := NewTriageService(reg)

	for _, q := range reg.Questions() {
		for _, value := range []bool{true, false} {
			single := svc.EvaluateOne(q.ID, value)
			if single == nil {
				continue
			}

			// Any superset containing the pair: here, the full bank with every
			// other question answered both ways
			for _, rest := range []bool{true, false} {
				answers := model.AnswerSet{}
				for _, other := range reg.Questions() {
					answers[other.ID] = rest
				}
				answers[q.ID] = value

				batch := svc.EvaluateAll(answers)
				assert.True(t, batch.Risk.AtLeast(single.Risk),
					"EvaluateAll risk %s below EvaluateOne risk %s for %s=%t", batch.Risk, single.Risk, q.ID, value)
			}
		}
	}
}

func TestEvaluateAllDoesNotMutateAnswers(t *testing.T) {
	answers := model.AnswerSet{"ending_life": true, "hearing_voices": false}
	newTriage(t).EvaluateAll(answers)

	assert.Len(t, answers, 2)
	assert.True(t, answers["ending_life"])
	assert.False(t, answers["hearing_voices"])
}
