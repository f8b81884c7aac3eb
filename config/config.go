package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds process configuration, read from the environment
type Config struct {
	HTTPPort  string
	JWTSecret string

	// BankPath is the YAML question-bank file. Empty means the built-in bank.
	BankPath string

	Referral *ReferralConfig
	Bands    FunctionalBands
}

// Load reads configuration from the environment with defaults
func Load() *Config {
	return &Config{
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		BankPath:  getEnv("BANK_PATH", ""),
		Referral:  DefaultReferralConfig(),
		Bands:     LoadFunctionalBands(),
	}
}

// ReferralConfig configures the outbound referral-creation collaborator
type ReferralConfig struct {
	BaseURL   string `json:"baseUrl"`
	APIKey    string `json:"-"` // Never serialize
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultReferralConfig returns the referral client configuration. The
// timeout is deliberately short: referral creation is best-effort and must
// never hold up the user-facing escalation path.
func DefaultReferralConfig() *ReferralConfig {
	return &ReferralConfig{
		BaseURL:   getEnv("REFERRAL_API_URL", ""),
		APIKey:    os.Getenv("REFERRAL_API_KEY"),
		TimeoutMS: getEnvInt("REFERRAL_TIMEOUT_MS", 5000),
	}
}

// IsEnabled returns true if the referral collaborator is configured
func (c *ReferralConfig) IsEnabled() bool {
	return c.BaseURL != ""
}

// FunctionalBands fixes the score boundaries for functional-impairment
// banding. The numeric boundaries are clinical configuration constants; they
// are validated at startup and never adjusted at runtime.
//
// A score s in 0..MaxScore maps to:
//
//	s <= SevereMax           -> severe
//	SevereMax < s <= LowMax  -> low
//	LowMax < s <= ModerateMax -> moderate
//	ModerateMax < s <= MaxScore -> high
type FunctionalBands struct {
	MaxScore    int `json:"maxScore"`
	SevereMax   int `json:"severeMax"`
	LowMax      int `json:"lowMax"`
	ModerateMax int `json:"moderateMax"`
}

// DefaultFunctionalBands returns the default banding over the 0-40 scale
func DefaultFunctionalBands() FunctionalBands {
	return FunctionalBands{
		MaxScore:    40,
		SevereMax:   11,
		LowMax:      23,
		ModerateMax: 31,
	}
}

// LoadFunctionalBands reads band boundaries from the environment, falling
// back to the defaults
func LoadFunctionalBands() FunctionalBands {
	def := DefaultFunctionalBands()
	return FunctionalBands{
		MaxScore:    getEnvInt("FUNCTIONAL_MAX_SCORE", def.MaxScore),
		SevereMax:   getEnvInt("FUNCTIONAL_SEVERE_MAX", def.SevereMax),
		LowMax:      getEnvInt("FUNCTIONAL_LOW_MAX", def.LowMax),
		ModerateMax: getEnvInt("FUNCTIONAL_MODERATE_MAX", def.ModerateMax),
	}
}

// Validate checks that the four bands are non-overlapping and cover the full
// 0..MaxScore range with no gaps. A misconfigured scale is fatal at startup.
func (b FunctionalBands) Validate() error {
	if b.MaxScore <= 0 {
		return fmt.Errorf("functional bands: max score must be positive, got %d", b.MaxScore)
	}
	if b.SevereMax < 0 {
		return fmt.Errorf("functional bands: severe band upper bound %d is negative", b.SevereMax)
	}
	if b.SevereMax >= b.LowMax {
		return fmt.Errorf("functional bands: severe band upper bound %d must be below low band upper bound %d", b.SevereMax, b.LowMax)
	}
	if b.LowMax >= b.ModerateMax {
		return fmt.Errorf("functional bands: low band upper bound %d must be below moderate band upper bound %d", b.LowMax, b.ModerateMax)
	}
	if b.ModerateMax >= b.MaxScore {
		return fmt.Errorf("functional bands: moderate band upper bound %d must be below max score %d", b.ModerateMax, b.MaxScore)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
