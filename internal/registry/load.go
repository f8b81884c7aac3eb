package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mindtriage/internal/model"
)

// Bank is the on-disk form of the question bank and explicit rule list
type Bank struct {
	Questions []model.Question `yaml:"questions"`
	Rules     []model.Rule     `yaml:"rules"`
}

// LoadBank reads a question-bank YAML file and builds a validated registry.
// Any parse or validation failure is fatal to the caller; a partially loaded
// rule set must never serve traffic.
func LoadBank(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
	}

	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse question bank %s: %w", path, err)
	}

	reg, err := New(bank.Questions, bank.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid question bank %s: %w", path, err)
	}
	return reg, nil
}
