package config

import (
	"os"
	"testing"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	original, existed := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
	t.Cleanup(func() {
		if !existed {
			_ = os.Unsetenv(key)
			return
		}
		_ = os.Setenv(key, original)
	})
}

func TestResumeAIAutoEnablesWithAPIKey(t *testing.T) {
	unsetEnv(t, "RESUME_AI_ENABLED")
	t.Setenv("OPENAI_API_KEY", "test-openai-key")

	cfg := New()
	if !cfg.ResumeAIEnable {
		t.Fatalf("expected resume AI structuring to auto-enable when API key is provided")
	}
}

func TestResumeAIRespectsExplicitDisable(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-openai-key")
	t.Setenv("RESUME_AI_ENABLED", "false")

	cfg := New()
	if cfg.ResumeAIEnable {
		t.Fatalf("expected resume AI structuring to remain disabled when flag explicitly set")
	}
}

func TestResumeAIRemainsDisabledWithoutAPIKey(t *testing.T) {
	unsetEnv(t, "RESUME_AI_ENABLED")
	unsetEnv(t, "OPENAI_API_KEY")

	cfg := New()
	if cfg.ResumeAIEnable {
		t.Fatalf("expected resume AI structuring to remain disabled without API key")
	}
}

func TestPlatformDomainDefault(t *testing.T) {
	unsetEnv(t, "PLATFORM_DOMAIN")

	cfg := New()
	if cfg.PlatformDomain != "folio.site" {
		t.Fatalf("unexpected default platform domain: %s", cfg.PlatformDomain)
	}
}

func TestDatabaseURLComposition(t *testing.T) {
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "sites")
	t.Setenv("DB_SSLMODE", "require")

	cfg := New()
	want := "postgres://u:p@db.example.com:5433/sites?sslmode=require"
	if cfg.DatabaseURL != want {
		t.Fatalf("DatabaseURL = %s, want %s", cfg.DatabaseURL, want)
	}
}
