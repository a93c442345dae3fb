package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type Config struct {
	AWS          AWSConfig
	Databases    []string
	RunOnStartup bool
	Cron         string
	ScratchDir   string
	LogLevel     string
	LogFile      string
	GDrive       GDriveConfig
	Telegram     TelegramConfig
}

type AWSConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Prefix          string
}

type GDriveConfig struct {
	CredentialsFile string
	FolderID        string
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// Load reads configuration from the environment. The list of databases
// is a comma-separated set of connection URIs; an empty list is valid
// and simply means there is nothing to back up.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("RUN_ON_STARTUP", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SCRATCH_DIR", os.TempDir())

	cfg := &Config{
		AWS: AWSConfig{
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Region:          v.GetString("AWS_S3_REGION"),
			Bucket:          v.GetString("AWS_S3_BUCKET"),
			Prefix:          v.GetString("AWS_S3_PREFIX"),
		},
		Databases:    splitDatabases(v.GetString("DATABASES")),
		RunOnStartup: v.GetBool("RUN_ON_STARTUP"),
		Cron:         v.GetString("CRON"),
		ScratchDir:   v.GetString("SCRATCH_DIR"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFile:      v.GetString("LOG_FILE"),
		GDrive: GDriveConfig{
			CredentialsFile: v.GetString("GDRIVE_CREDENTIALS_FILE"),
			FolderID:        v.GetString("GDRIVE_FOLDER_ID"),
		},
		Telegram: TelegramConfig{
			BotToken: v.GetString("TELEGRAM_BOT_TOKEN"),
			ChatID:   v.GetString("TELEGRAM_CHAT_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"AWS_ACCESS_KEY_ID", c.AWS.AccessKeyID},
		{"AWS_SECRET_ACCESS_KEY", c.AWS.SecretAccessKey},
		{"AWS_S3_REGION", c.AWS.Region},
		{"AWS_S3_BUCKET", c.AWS.Bucket},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	if c.Cron != "" {
		if _, err := cron.ParseStandard(c.Cron); err != nil {
			return fmt.Errorf("CRON expression %q: %w", c.Cron, err)
		}
	}

	if c.GDrive.CredentialsFile != "" && c.GDrive.FolderID == "" {
		return fmt.Errorf("GDRIVE_FOLDER_ID is required when GDRIVE_CREDENTIALS_FILE is set")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	return nil
}

func (c *Config) GDriveEnabled() bool {
	return c.GDrive.CredentialsFile != ""
}

func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != ""
}

func splitDatabases(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var uris []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			uris = append(uris, part)
		}
	}
	return uris
}
