package service

import (
	"fmt"

	"mindtriage/config"
	"mindtriage/internal/model"
)

// RiskService combines triage risk with the functional-impairment score to
// produce the final overall classification
type RiskService struct {
	bands config.FunctionalBands
}

// NewRiskService creates a new risk service. Bands must already be validated.
func NewRiskService(bands config.FunctionalBands) *RiskService {
	return &RiskService{bands: bands}
}

// FunctionalLevel maps an impairment score to its band. Every integer in
// 0..MaxScore maps to exactly one band; scores outside the scale are caller
// errors, not clamped.
func (s *RiskService) FunctionalLevel(score int) (model.FunctionalLevel, error) {
	if score < 0 || score > s.bands.MaxScore {
		return "", fmt.Errorf("functional score %d outside valid range 0-%d", score, s.bands.MaxScore)
	}
	switch {
	case score <= s.bands.SevereMax:
		return model.FunctionalSevere, nil
	case score <= s.bands.LowMax:
		return model.FunctionalLow, nil
	case score <= s.bands.ModerateMax:
		return model.FunctionalModerate, nil
	default:
		return model.FunctionalHigh, nil
	}
}

// OverallRisk merges triage risk with the functional level. Triage dominates
// for the top two levels: imminent and high pass through unchanged, whatever
// the functional level. Below that, severe impairment bumps moderate to high
// and low to moderate, and low functioning bumps low to moderate. The
// function is total over the 4x4 input space.
func (s *RiskService) OverallRisk(triage model.RiskLevel, functional model.FunctionalLevel) model.RiskLevel {
	if triage == model.RiskImminent || triage == model.RiskHigh {
		return triage
	}

	switch functional {
	case model.FunctionalSevere:
		if triage == model.RiskModerate {
			return model.RiskHigh
		}
		return model.RiskModerate
	case model.FunctionalLow:
		if triage == model.RiskLow {
			return model.RiskModerate
		}
		return triage
	default:
		return triage
	}
}
