package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the approval service's operator-supplied configuration. All
// values come from the environment; a local .env file is honored for
// development.
type Config struct {
	ListenAddr string
	BaseURL    string
	AWSRegion  string

	IdentityStoreID string
	GroupID         string
	SSOStartURL     string

	FromEmail  string
	AdminEmail string

	// SecretKey signs action tokens. It is never logged.
	SecretKey string

	// EmailBackend selects "ses" (default) or "smtp".
	EmailBackend string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
}

// LoadConfigFromEnv reads the service configuration, returning an error
// naming every missing required variable.
func LoadConfigFromEnv() (*Config, error) {
	// Best-effort; production deployments set real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		BaseURL:         strings.TrimSuffix(os.Getenv("BASE_URL"), "/"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		IdentityStoreID: os.Getenv("IDENTITY_STORE_ID"),
		GroupID:         os.Getenv("CLI_GROUP_ID"),
		SSOStartURL:     os.Getenv("SSO_START_URL"),
		FromEmail:       os.Getenv("FROM_EMAIL"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		SecretKey:       os.Getenv("SECRET_KEY"),
		EmailBackend:    getEnv("EMAIL_BACKEND", "ses"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
	}

	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
		}
		cfg.SMTPPort = p
	}

	var missing []string
	for name, value := range map[string]string{
		"BASE_URL":          cfg.BaseURL,
		"IDENTITY_STORE_ID": cfg.IdentityStoreID,
		"CLI_GROUP_ID":      cfg.GroupID,
		"SSO_START_URL":     cfg.SSOStartURL,
		"FROM_EMAIL":        cfg.FromEmail,
		"ADMIN_EMAIL":       cfg.AdminEmail,
		"SECRET_KEY":        cfg.SecretKey,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.EmailBackend == "smtp" && cfg.SMTPHost == "" {
		return nil, fmt.Errorf("EMAIL_BACKEND=smtp requires SMTP_HOST")
	}

	return cfg, nil
}

func getEnv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
