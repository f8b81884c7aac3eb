package model

// RiskLevel is the triage risk classification for a screening
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskImminent RiskLevel = "imminent"
)

// riskRank defines the total order low < moderate < high < imminent
var riskRank = map[RiskLevel]int{
	RiskLow:      0,
	RiskModerate: 1,
	RiskHigh:     2,
	RiskImminent: 3,
}

// Rank returns the position of the level in the total order
func (r RiskLevel) Rank() int {
	return riskRank[r]
}

// IsValid returns true if the level is one of the four defined values
func (r RiskLevel) IsValid() bool {
	_, ok := riskRank[r]
	return ok
}

// AtLeast returns true if r is greater than or equal to other in the total order
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return riskRank[r] >= riskRank[other]
}

// MaxRisk returns the higher of two risk levels. Merging risk signals always
// takes the maximum under the total order, never the most recent.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if riskRank[b] > riskRank[a] {
		return b
	}
	return a
}

// FunctionalLevel bands the social/functional-impairment score, independent
// of triage risk. "severe" is severe impairment (lowest functioning).
type FunctionalLevel string

const (
	FunctionalSevere   FunctionalLevel = "severe"
	FunctionalLow      FunctionalLevel = "low"
	FunctionalModerate FunctionalLevel = "moderate"
	FunctionalHigh     FunctionalLevel = "high"
)

// IsValid returns true if the level is one of the four defined bands
func (f FunctionalLevel) IsValid() bool {
	switch f {
	case FunctionalSevere, FunctionalLow, FunctionalModerate, FunctionalHigh:
		return true
	}
	return false
}
