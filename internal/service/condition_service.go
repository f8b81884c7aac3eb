package service

import (
	"mindtriage/internal/model"
	"mindtriage/internal/registry"
)

// ConditionService maps answers to suspected clinical condition tags. It
// carries no risk semantics: a user can have detected conditions while the
// overall risk stays low.
type ConditionService struct {
	registry *registry.Registry
}

// NewConditionService creates a new condition service
func NewConditionService(reg *registry.Registry) *ConditionService {
	return &ConditionService{registry: reg}
}

// DetectConditions returns the deduplicated condition tags for every question
// with a trigger condition that was answered true. Output order follows the
// question bank, so results are deterministic regardless of map iteration.
func (s *ConditionService) DetectConditions(answers model.AnswerSet) []model.ConditionTag {
	var tags []model.ConditionTag
	seen := make(map[model.ConditionTag]bool)
	for _, q := range s.registry.Questions() {
		if q.TriggerCondition == "" || seen[q.TriggerCondition] {
			continue
		}
		if answers[q.ID] {
			seen[q.TriggerCondition] = true
			tags = append(tags, q.TriggerCondition)
		}
	}
	return tags
}
