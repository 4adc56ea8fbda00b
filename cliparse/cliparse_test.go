package cliparse

import (
	"strings"
	"testing"
)

// clearEnv blanks the config variables so ambient values cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "STORAGE_DRIVER", "DATABASE_URL", "ADMIN_DASH_KEY"} {
		t.Setenv(k, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.StorageDriver != DriverSQLite {
		t.Errorf("StorageDriver = %s, want sqlite", cfg.StorageDriver)
	}
	if cfg.DatabaseURL != "./data/question_mark.db" {
		t.Errorf("DatabaseURL = %s", cfg.DatabaseURL)
	}
	if cfg.AdminKey != "" {
		t.Errorf("AdminKey = %q, want empty", cfg.AdminKey)
	}
}

func TestParseFlagsCLI(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-p", "8080",
		"-s", "badger",
		"-d", "/var/lib/qm",
		"-admin-key", "dev-key",
	})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 8080 || cfg.StorageDriver != DriverBadger || cfg.DatabaseURL != "/var/lib/qm" || cfg.AdminKey != "dev-key" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("STORAGE_DRIVER", "badger")
	t.Setenv("DATABASE_URL", "/tmp/questions")
	t.Setenv("ADMIN_DASH_KEY", "env-key")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 4000 || cfg.StorageDriver != DriverBadger || cfg.DatabaseURL != "/tmp/questions" || cfg.AdminKey != "env-key" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseFlagsCLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "4000")

	cfg, err := ParseFlags([]string{"-p", "8080"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want CLI value 8080", cfg.Port)
	}
}

func TestParseFlagsBadDriver(t *testing.T) {
	_, err := ParseFlags([]string{"-s", "mongo"})
	if err == nil || !strings.Contains(err.Error(), "storage driver") {
		t.Errorf("ParseFlags() error = %v, want storage driver error", err)
	}
}

func TestParseFlagsPostgresRequiresURL(t *testing.T) {
	clearEnv(t)

	_, err := ParseFlags([]string{"-s", "postgres"})
	if err == nil {
		t.Error("ParseFlags() with postgres and no URL should fail")
	}
}

func TestParseFlagsBadgerDefaultDir(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-s", "badger"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.DatabaseURL != "./data/questions" {
		t.Errorf("DatabaseURL = %s, want ./data/questions", cfg.DatabaseURL)
	}
}

func TestParseFlagsInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "abc")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("ParseFlags() with bad PORT env should fail")
	}
}
