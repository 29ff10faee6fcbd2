package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the runtime configuration of the API.
//
// Values come from an optional YAML file (CONFIG_FILE) and are overridden by
// environment variables. Unset or unparsable numeric values keep their defaults.
type Settings struct {
	Port          string `yaml:"port"`
	StorageDriver string `yaml:"storageDriver"`

	JWTSecret string `yaml:"jwtSecret"`

	RedisAddr       string `yaml:"redisAddr"`
	RedisPassword   string `yaml:"redisPassword"`
	RateLimitPerMin int    `yaml:"rateLimitPerMinute"`

	SMTPHost   string `yaml:"smtpHost"`
	SMTPPort   int    `yaml:"smtpPort"`
	SMTPUser   string `yaml:"smtpUser"`
	SMTPPass   string `yaml:"smtpPass"`
	EmailFrom  string `yaml:"emailFrom"`
	EnableSMS  bool   `yaml:"enableSms"`
	EnablePush bool   `yaml:"enablePush"`

	SlotCapacityPerDay  int    `yaml:"slotCapacityPerDay"`
	SpecialSlotCapacity int    `yaml:"specialSlotCapacity"`
	SlotTimezone        string `yaml:"slotTimezone"`

	DraftRetentionDays          int `yaml:"draftRetentionDays"`
	CleanupHour                 int `yaml:"cleanupHour"`
	NotificationIntervalSeconds int `yaml:"notificationIntervalSeconds"`

	Location *time.Location `yaml:"-"`
}

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

func defaults() Settings {
	return Settings{
		Port:                        "8080",
		StorageDriver:               StorageDynamoDB,
		RateLimitPerMin:             60,
		SMTPPort:                    587,
		EmailFrom:                   "no-reply@wastepickup.local",
		SlotCapacityPerDay:          24,
		SpecialSlotCapacity:         2,
		SlotTimezone:                "UTC",
		DraftRetentionDays:          7,
		CleanupHour:                 3,
		NotificationIntervalSeconds: 120,
	}
}

// Load builds Settings. path may be empty, in which case only the environment
// and defaults are used.
func Load(path string) (Settings, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Port = envString("API_PORT", cfg.Port)
	cfg.StorageDriver = strings.ToLower(envString("STORAGE_DRIVER", cfg.StorageDriver))
	cfg.JWTSecret = envString("JWT_SECRET", cfg.JWTSecret)
	cfg.RedisAddr = envString("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = envString("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RateLimitPerMin = envInt("RATE_LIMIT_PER_MIN", cfg.RateLimitPerMin)
	cfg.SMTPHost = envString("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = envInt("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUser = envString("SMTP_USER", cfg.SMTPUser)
	cfg.SMTPPass = envString("SMTP_PASS", cfg.SMTPPass)
	cfg.EmailFrom = envString("EMAIL_FROM", cfg.EmailFrom)
	cfg.EnableSMS = envBool("ENABLE_SMS", cfg.EnableSMS)
	cfg.EnablePush = envBool("ENABLE_PUSH", cfg.EnablePush)
	cfg.SlotCapacityPerDay = envInt("SLOT_CAPACITY_PER_DAY", cfg.SlotCapacityPerDay)
	cfg.SpecialSlotCapacity = envInt("SPECIAL_SLOT_CAPACITY", cfg.SpecialSlotCapacity)
	cfg.SlotTimezone = envString("SLOT_TIMEZONE", cfg.SlotTimezone)
	cfg.DraftRetentionDays = envInt("DRAFT_RETENTION_DAYS", cfg.DraftRetentionDays)
	cfg.CleanupHour = envInt("CLEANUP_HOUR", cfg.CleanupHour)
	cfg.NotificationIntervalSeconds = envInt("NOTIFICATION_INTERVAL_SECONDS", cfg.NotificationIntervalSeconds)

	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *Settings) normalize() error {
	d := defaults()
	if s.RateLimitPerMin < 0 {
		s.RateLimitPerMin = d.RateLimitPerMin
	}
	if s.SlotCapacityPerDay <= 0 {
		s.SlotCapacityPerDay = d.SlotCapacityPerDay
	}
	if s.SpecialSlotCapacity <= 0 {
		s.SpecialSlotCapacity = d.SpecialSlotCapacity
	}
	if s.DraftRetentionDays <= 0 {
		s.DraftRetentionDays = d.DraftRetentionDays
	}
	if s.CleanupHour < 0 || s.CleanupHour > 23 {
		s.CleanupHour = d.CleanupHour
	}
	if s.NotificationIntervalSeconds <= 0 {
		s.NotificationIntervalSeconds = d.NotificationIntervalSeconds
	}
	switch s.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", s.StorageDriver)
	}

	loc, err := time.LoadLocation(strings.TrimSpace(s.SlotTimezone))
	if err != nil {
		return fmt.Errorf("load SLOT_TIMEZONE: %w", err)
	}
	s.Location = loc
	return nil
}

// DraftRetention is the age after which untouched drafts are purged.
func (s Settings) DraftRetention() time.Duration {
	return time.Duration(s.DraftRetentionDays) * 24 * time.Hour
}

func (s Settings) NotificationInterval() time.Duration {
	return time.Duration(s.NotificationIntervalSeconds) * time.Second
}

// ErrMissingJWTSecret is returned by Validate when auth cannot be enforced.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Validate checks settings that have no safe default.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
