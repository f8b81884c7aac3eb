package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	vars := []string{
		"HTTP_PORT", "JWT_SECRET", "BANK_PATH",
		"REFERRAL_API_URL", "REFERRAL_API_KEY", "REFERRAL_TIMEOUT_MS",
		"FUNCTIONAL_MAX_SCORE", "FUNCTIONAL_SEVERE_MAX", "FUNCTIONAL_LOW_MAX", "FUNCTIONAL_MODERATE_MAX",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.BankPath)
	assert.False(t, cfg.Referral.IsEnabled())
	assert.Equal(t, 5000, cfg.Referral.TimeoutMS)
	assert.Equal(t, DefaultFunctionalBands(), cfg.Bands)
}

func TestLoadFromEnvironment(t *testing.T) {
	os.Setenv("HTTP_PORT", "9090")
	os.Setenv("REFERRAL_API_URL", "https://referrals.example.com/v1")
	os.Setenv("REFERRAL_TIMEOUT_MS", "1500")
	os.Setenv("FUNCTIONAL_SEVERE_MAX", "9")
	defer func() {
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("REFERRAL_API_URL")
		os.Unsetenv("REFERRAL_TIMEOUT_MS")
		os.Unsetenv("FUNCTIONAL_SEVERE_MAX")
	}()

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.True(t, cfg.Referral.IsEnabled())
	assert.Equal(t, "https://referrals.example.com/v1", cfg.Referral.BaseURL)
	assert.Equal(t, 1500, cfg.Referral.TimeoutMS)
	assert.Equal(t, 9, cfg.Bands.SevereMax)
}

func TestDefaultFunctionalBandsValid(t *testing.T) {
	require.NoError(t, DefaultFunctionalBands().Validate())
}

func TestFunctionalBandsValidation(t *testing.T) {
	tests := []struct {
		name  string
		bands FunctionalBands
		ok    bool
	}{
		{"defaults", FunctionalBands{MaxScore: 40, SevereMax: 11, LowMax: 23, ModerateMax: 31}, true},
		{"tight but valid", FunctionalBands{MaxScore: 3, SevereMax: 0, LowMax: 1, ModerateMax: 2}, true},
		{"zero max score", FunctionalBands{MaxScore: 0, SevereMax: 0, LowMax: 1, ModerateMax: 2}, false},
		{"negative severe", FunctionalBands{MaxScore: 40, SevereMax: -1, LowMax: 23, ModerateMax: 31}, false},
		{"severe overlaps low", FunctionalBands{MaxScore: 40, SevereMax: 23, LowMax: 23, ModerateMax: 31}, false},
		{"low overlaps moderate", FunctionalBands{MaxScore: 40, SevereMax: 11, LowMax: 31, ModerateMax: 31}, false},
		{"moderate swallows scale", FunctionalBands{MaxScore: 40, SevereMax: 11, LowMax: 23, ModerateMax: 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bands.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
