package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Reporting ReportingConfig
	Ledger    LedgerConfig
	Notify    NotifyConfig
	Roster    RosterConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the MongoDB record store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// ReportingConfig holds close-of-day scheduler settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// LedgerConfig configures the optional Google Sheets daily ledger. The
// export is disabled when either field is empty.
type LedgerConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the sheets ledger should be wired up.
func (c LedgerConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// NotifyConfig configures the optional close-of-day webhook push.
type NotifyConfig struct {
	WebhookURL string
}

// Enabled reports whether the digest webhook should be wired up.
func (c NotifyConfig) Enabled() bool {
	return c.WebhookURL != ""
}

// RosterConfig lists the fixed visitor roster. Anyone else logs a visit
// through the guest category.
type RosterConfig struct {
	Members []string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "gamingcafe"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "5 0 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
		Ledger: LedgerConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LEDGER_ID"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("REPORT_WEBHOOK_URL"),
		},
		Roster: RosterConfig{
			Members: splitList(getenvWithDefault("ROSTER", "Mamlesh,Varun,Venu")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}

	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.Ledger.CredentialsPath != "" && c.Ledger.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_LEDGER_ID must be provided when ledger credentials are set")
	}

	if len(c.Roster.Members) == 0 {
		return errors.New("ROSTER must list at least one member")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	members := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			members = append(members, trimmed)
		}
	}
	return members
}
