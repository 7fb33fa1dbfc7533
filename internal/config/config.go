package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/profootgn/league-api/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	DBURL                   string
	DBDisablePreparedBinary bool
	CacheEnabled            bool
	CacheTTL                time.Duration
	CORSAllowedOrigins      []string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration

	AdminToken        string
	AutoCreatePlayers bool
	TopScorersLimit   int
	RoundsTotal       int

	StatsRefreshEnabled  bool
	StatsRefreshInterval time.Duration
	StatsRefreshWorkers  int

	MediaEnabled              bool
	MediaBaseURL              string
	MediaToken                string
	MediaTimeout              time.Duration
	MediaCircuitEnabled       bool
	MediaCircuitFailureCount  int
	MediaCircuitOpenTimeout   time.Duration
	MediaCircuitHalfOpenMaxRq int

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	LogLevel logging.Level
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

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	autoCreatePlayers, err := strconv.ParseBool(getEnv("AUTO_CREATE_PLAYERS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTO_CREATE_PLAYERS: %w", err)
	}

	topScorersLimit, err := getEnvAsInt("TOP_SCORERS_LIMIT", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse TOP_SCORERS_LIMIT: %w", err)
	}
	if topScorersLimit < 1 {
		return Config{}, fmt.Errorf("TOP_SCORERS_LIMIT must be >= 1")
	}

	roundsTotal, err := getEnvAsInt("ROUNDS_TOTAL", 26)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROUNDS_TOTAL: %w", err)
	}
	if roundsTotal < 1 {
		return Config{}, fmt.Errorf("ROUNDS_TOTAL must be >= 1")
	}

	statsRefreshEnabled, err := strconv.ParseBool(getEnv("STATS_REFRESH_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_REFRESH_ENABLED: %w", err)
	}
	statsRefreshInterval, err := time.ParseDuration(getEnv("STATS_REFRESH_INTERVAL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_REFRESH_INTERVAL: %w", err)
	}
	if statsRefreshInterval <= 0 {
		return Config{}, fmt.Errorf("STATS_REFRESH_INTERVAL must be > 0")
	}
	statsRefreshWorkers, err := getEnvAsInt("STATS_REFRESH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_REFRESH_WORKERS: %w", err)
	}
	if statsRefreshWorkers < 1 {
		return Config{}, fmt.Errorf("STATS_REFRESH_WORKERS must be >= 1")
	}

	mediaEnabled, err := strconv.ParseBool(getEnv("MEDIA_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MEDIA_ENABLED: %w", err)
	}
	mediaBaseURL := strings.TrimSpace(getEnv("MEDIA_BASE_URL", ""))
	mediaToken := strings.TrimSpace(getEnv("MEDIA_TOKEN", ""))
	if mediaEnabled {
		if mediaBaseURL == "" {
			return Config{}, fmt.Errorf("MEDIA_BASE_URL is required when MEDIA_ENABLED=true")
		}
		if mediaToken == "" {
			return Config{}, fmt.Errorf("MEDIA_TOKEN is required when MEDIA_ENABLED=true")
		}
	}
	mediaTimeout, err := time.ParseDuration(getEnv("MEDIA_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MEDIA_TIMEOUT: %w", err)
	}
	if mediaTimeout <= 0 {
		return Config{}, fmt.Errorf("MEDIA_TIMEOUT must be > 0")
	}
	mediaCircuitEnabled, err := strconv.ParseBool(getEnv("MEDIA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MEDIA_CIRCUIT_ENABLED: %w", err)
	}
	mediaCircuitFailureCount, err := getEnvAsInt("MEDIA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse MEDIA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if mediaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("MEDIA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	mediaCircuitOpenTimeout, err := time.ParseDuration(getEnv("MEDIA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MEDIA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if mediaCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("MEDIA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	mediaCircuitHalfOpenMaxRq, err := getEnvAsInt("MEDIA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse MEDIA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if mediaCircuitHalfOpenMaxRq < 1 {
		return Config{}, fmt.Errorf("MEDIA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
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

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "league-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                   strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		CacheEnabled:            cacheEnabled,
		CacheTTL:                cacheTTL,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,

		AdminToken:        strings.TrimSpace(getEnv("ADMIN_TOKEN", "")),
		AutoCreatePlayers: autoCreatePlayers,
		TopScorersLimit:   topScorersLimit,
		RoundsTotal:       roundsTotal,

		StatsRefreshEnabled:  statsRefreshEnabled,
		StatsRefreshInterval: statsRefreshInterval,
		StatsRefreshWorkers:  statsRefreshWorkers,

		MediaEnabled:              mediaEnabled,
		MediaBaseURL:              mediaBaseURL,
		MediaToken:                mediaToken,
		MediaTimeout:              mediaTimeout,
		MediaCircuitEnabled:       mediaCircuitEnabled,
		MediaCircuitFailureCount:  mediaCircuitFailureCount,
		MediaCircuitOpenTimeout:   mediaCircuitOpenTimeout,
		MediaCircuitHalfOpenMaxRq: mediaCircuitHalfOpenMaxRq,

		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		LogLevel: parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.AppEnv == EnvProd && cfg.AdminToken == "" {
		return Config{}, fmt.Errorf("ADMIN_TOKEN is required when APP_ENV=prod")
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
