package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/splcricket/auction-hall/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	DBURL                       string
	DBDisablePreparedBinary     bool
	SeedDemoData                bool
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	UptraceEnabled              bool
	UptraceDSN                  string
	UptraceLogsEnabled          bool
	UploadEnabled               bool
	UploadBaseURL               string
	UploadBucket                string
	UploadAPIKey                string
	UploadTimeout               time.Duration
	UploadMaxObjectBytes        int64
	UploadCircuitEnabled        bool
	UploadCircuitFailureCount   int
	UploadCircuitOpenTimeout    time.Duration
	UploadCircuitHalfOpenMaxReq int
	LogLevel                    logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	seedDemoData, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_DEMO_DATA: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	uploadEnabled, err := strconv.ParseBool(getEnv("UPLOAD_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_ENABLED: %w", err)
	}
	uploadBaseURL := strings.TrimSpace(getEnv("UPLOAD_BASE_URL", ""))
	uploadBucket := strings.TrimSpace(getEnv("UPLOAD_BUCKET", "auction-assets"))
	uploadAPIKey := strings.TrimSpace(getEnv("UPLOAD_API_KEY", ""))
	if uploadEnabled {
		if uploadBaseURL == "" {
			return Config{}, fmt.Errorf("UPLOAD_BASE_URL is required when UPLOAD_ENABLED=true")
		}
		if uploadBucket == "" {
			return Config{}, fmt.Errorf("UPLOAD_BUCKET is required when UPLOAD_ENABLED=true")
		}
	}
	uploadTimeout, err := time.ParseDuration(getEnv("UPLOAD_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_TIMEOUT: %w", err)
	}
	if uploadTimeout <= 0 {
		return Config{}, fmt.Errorf("UPLOAD_TIMEOUT must be > 0")
	}
	uploadMaxObjectBytes, err := getEnvAsInt("UPLOAD_MAX_OBJECT_BYTES", 8<<20)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_MAX_OBJECT_BYTES: %w", err)
	}
	if uploadMaxObjectBytes <= 0 {
		return Config{}, fmt.Errorf("UPLOAD_MAX_OBJECT_BYTES must be > 0")
	}
	uploadCircuitEnabled, err := strconv.ParseBool(getEnv("UPLOAD_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_CIRCUIT_ENABLED: %w", err)
	}
	uploadCircuitFailureCount, err := getEnvAsInt("UPLOAD_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if uploadCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("UPLOAD_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	uploadCircuitOpenTimeout, err := time.ParseDuration(getEnv("UPLOAD_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if uploadCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("UPLOAD_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	uploadCircuitHalfOpenMaxReq, err := getEnvAsInt("UPLOAD_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if uploadCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("UPLOAD_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "auction-hall-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                       getEnv("DB_URL", ""),
		DBDisablePreparedBinary:     dbDisablePreparedBinary,
		SeedDemoData:                seedDemoData,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		UptraceLogsEnabled:          uptraceLogsEnabled,
		UploadEnabled:               uploadEnabled,
		UploadBaseURL:               uploadBaseURL,
		UploadBucket:                uploadBucket,
		UploadAPIKey:                uploadAPIKey,
		UploadTimeout:               uploadTimeout,
		UploadMaxObjectBytes:        int64(uploadMaxObjectBytes),
		UploadCircuitEnabled:        uploadCircuitEnabled,
		UploadCircuitFailureCount:   uploadCircuitFailureCount,
		UploadCircuitOpenTimeout:    uploadCircuitOpenTimeout,
		UploadCircuitHalfOpenMaxReq: uploadCircuitHalfOpenMaxReq,
		LogLevel:                    parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
