package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BASE_URL", "https://approvals.example.com/")
	t.Setenv("IDENTITY_STORE_ID", "d-1234567890")
	t.Setenv("CLI_GROUP_ID", "group-1234")
	t.Setenv("SSO_START_URL", "https://my-sso.awsapps.com/start")
	t.Setenv("FROM_EMAIL", "noreply@example.com")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("SECRET_KEY", "test-secret")
}

func TestLoadConfigFromEnv(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfigFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "ses", cfg.EmailBackend)
	// Trailing slash is stripped so link concatenation stays clean.
	assert.Equal(t, "https://approvals.example.com", cfg.BaseURL)
}

func TestLoadConfigFromEnvMissingVariables(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRET_KEY", "")
	t.Setenv("ADMIN_EMAIL", "")

	_, err := LoadConfigFromEnv()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_EMAIL")
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadConfigFromEnvSMTPBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("EMAIL_BACKEND", "smtp")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "587")

	cfg, err := LoadConfigFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "smtp", cfg.EmailBackend)
	assert.Equal(t, "mail.example.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoadConfigFromEnvSMTPRequiresHost(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("EMAIL_BACKEND", "smtp")
	t.Setenv("SMTP_HOST", "")

	_, err := LoadConfigFromEnv()

	assert.ErrorContains(t, err, "SMTP_HOST")
}

func TestLoadConfigFromEnvInvalidSMTPPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := LoadConfigFromEnv()

	assert.ErrorContains(t, err, "SMTP_PORT")
}
