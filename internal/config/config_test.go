package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SlotCapacityPerDay != 24 || cfg.SpecialSlotCapacity != 2 || cfg.CleanupHour != 3 {
		t.Fatalf("unexpected slot/cleanup defaults: %+v", cfg)
	}
	if cfg.Location != time.UTC {
		t.Fatalf("expected UTC location, got %v", cfg.Location)
	}
	if cfg.DraftRetention() != 7*24*time.Hour || cfg.NotificationInterval() != 120*time.Second {
		t.Fatalf("unexpected durations")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("SLOT_CAPACITY_PER_DAY", "5")
	t.Setenv("SPECIAL_SLOT_CAPACITY", "oops")
	t.Setenv("ENABLE_SMS", "true")
	t.Setenv("CLEANUP_HOUR", "30")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.StorageDriver != StorageMemory {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.SlotCapacityPerDay != 5 {
		t.Fatalf("expected capacity 5, got %d", cfg.SlotCapacityPerDay)
	}
	if cfg.SpecialSlotCapacity != 2 {
		t.Fatalf("invalid number must fall back to default, got %d", cfg.SpecialSlotCapacity)
	}
	if !cfg.EnableSMS {
		t.Fatalf("expected sms enabled")
	}
	if cfg.CleanupHour != 3 {
		t.Fatalf("out of range hour must fall back, got %d", cfg.CleanupHour)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"7000\"\nslotCapacityPerDay: 10\njwtSecret: from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7000" || cfg.SlotCapacityPerDay != 10 {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("env must override yaml, got %q", cfg.JWTSecret)
	}
}

func TestLoadRejectsBadTimezoneAndDriver(t *testing.T) {
	t.Run("timezone", func(t *testing.T) {
		t.Setenv("SLOT_TIMEZONE", "Mars/Olympus")
		if _, err := Load(""); err == nil {
			t.Fatalf("expected error for unknown timezone")
		}
	})
	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "cassandra")
		if _, err := Load(""); err == nil {
			t.Fatalf("expected error for unknown driver")
		}
	})
}

func TestValidate(t *testing.T) {
	if err := (Settings{}).Validate(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
	if err := (Settings{JWTSecret: "s"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
