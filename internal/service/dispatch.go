package service

import (
	"sort"

	"mindtriage/internal/model"
)

// Dispatch deduplicates a result's action set and returns it in the fixed
// execution priority order: redirect, overlay, block, log, banner. It has no
// side effects; executing the instructions belongs to the UI/session layer.
func Dispatch(result model.TriageResult) []model.Action {
	seen := make(map[model.Action]bool, len(result.Actions))
	ordered := make([]model.Action, 0, len(result.Actions))
	for _, a := range result.Actions {
		if !seen[a] {
			seen[a] = true
			ordered = append(ordered, a)
		}
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].DispatchRank() < ordered[j].DispatchRank()
	})
	return ordered
}
