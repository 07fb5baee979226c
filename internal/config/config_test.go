package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "auction-hall-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DBURL by default, got %q", cfg.DBURL)
	}
	if !cfg.SeedDemoData {
		t.Fatalf("expected SeedDemoData=true by default")
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected ReadTimeout: %s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected WriteTimeout: %s", cfg.WriteTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/123"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_UploadRequiresBaseURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("UPLOAD_ENABLED", "true")
	t.Setenv("UPLOAD_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPLOAD_ENABLED=true without UPLOAD_BASE_URL")
	}
}

func TestLoad_UploadConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("UPLOAD_ENABLED", "true")
	t.Setenv("UPLOAD_BASE_URL", "https://store.example.com/storage/v1")
	t.Setenv("UPLOAD_BUCKET", "player-photos")
	t.Setenv("UPLOAD_API_KEY", "secret-key")
	t.Setenv("UPLOAD_TIMEOUT", "10s")
	t.Setenv("UPLOAD_MAX_OBJECT_BYTES", "1048576")
	t.Setenv("UPLOAD_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.UploadEnabled {
		t.Fatalf("expected UploadEnabled=true")
	}
	if cfg.UploadBaseURL != "https://store.example.com/storage/v1" {
		t.Fatalf("unexpected UploadBaseURL: %q", cfg.UploadBaseURL)
	}
	if cfg.UploadBucket != "player-photos" {
		t.Fatalf("unexpected UploadBucket: %q", cfg.UploadBucket)
	}
	if cfg.UploadTimeout != 10*time.Second {
		t.Fatalf("unexpected UploadTimeout: %s", cfg.UploadTimeout)
	}
	if cfg.UploadMaxObjectBytes != 1048576 {
		t.Fatalf("unexpected UploadMaxObjectBytes: %d", cfg.UploadMaxObjectBytes)
	}
	if cfg.UploadCircuitFailureCount != 3 {
		t.Fatalf("unexpected UploadCircuitFailureCount: %d", cfg.UploadCircuitFailureCount)
	}
}

func TestLoad_InvalidUploadTimeout(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("UPLOAD_TIMEOUT", "-5s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative UPLOAD_TIMEOUT")
	}
}

func TestLoad_CORSOriginsCSV(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.spl.example, https://display.spl.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://display.spl.example" {
		t.Fatalf("unexpected second origin: %q", cfg.CORSAllowedOrigins[1])
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}
