package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_YAMLFile(t *testing.T) {
	content := `
server:
  port: 9090
  environment: production
rules:
  file: /etc/pulsecheck/rules.yaml
logging:
  file: /var/log/pulsecheck.log
  max_size_mb: 20
  console: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Environment != "production" {
		t.Errorf("expected production environment, got %s", cfg.Server.Environment)
	}
	if cfg.Rules.File != "/etc/pulsecheck/rules.yaml" {
		t.Errorf("rules file not decoded: %s", cfg.Rules.File)
	}
	if cfg.Logging.MaxSizeMB != 20 {
		t.Errorf("expected max size 20, got %d", cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.Console {
		t.Error("expected console logging disabled")
	}
	// Unset fields keep their defaults
	if cfg.Server.WriteTimeout != 15*time.Second {
		t.Errorf("expected default write timeout, got %v", cfg.Server.WriteTimeout)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("PULSECHECK_TEST_RULES", "/tmp/rules.yaml")

	content := `
rules:
  file: ${PULSECHECK_TEST_RULES}
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rules.File != "/tmp/rules.yaml" {
		t.Errorf("env var not expanded: %s", cfg.Rules.File)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RULES_FILE", "")

	cfg := LoadFromEnv()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Rules.File != "" {
		t.Errorf("expected no rules file by default, got %s", cfg.Rules.File)
	}
	if cfg.Logging.File == "" {
		t.Error("expected a default log file name")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "3010")
	t.Setenv("RULES_FILE", "custom.yaml")
	t.Setenv("LOG_TO_CONSOLE", "false")

	cfg := LoadFromEnv()

	if cfg.Server.Port != 3010 {
		t.Errorf("expected port 3010, got %d", cfg.Server.Port)
	}
	if cfg.Rules.File != "custom.yaml" {
		t.Errorf("expected custom.yaml, got %s", cfg.Rules.File)
	}
	if cfg.Logging.Console {
		t.Error("expected console logging disabled")
	}
}
