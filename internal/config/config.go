package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"undercover/internal/domain"
	"undercover/internal/materials"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Game      GameConfig
	Generator GeneratorConfig
	HTTP      HTTPConfig
	Logging   LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string // "development" or "production"
}

// GameConfig holds session limits and timings
type GameConfig struct {
	MinPlayers            int
	MaxPlayers            int
	DefaultPlayerCount    int
	DefaultTimerSeconds   int
	MaxCustomTimerMinutes int
	RevealDelay           time.Duration
	TickInterval          time.Duration
	StaleSessionTimeout   time.Duration
}

// GeneratorConfig holds text generator configuration
type GeneratorConfig struct {
	APIKey         string
	Model          string
	Timeout        time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// HTTPConfig holds per-client limits for generator-backed routes
type HTTPConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load loads configuration from an optional .env file and environment variables with defaults
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Game: GameConfig{
			MinPlayers:            getEnvInt("MIN_PLAYERS", 3),
			MaxPlayers:            getEnvInt("MAX_PLAYERS", 20),
			DefaultPlayerCount:    getEnvInt("DEFAULT_PLAYER_COUNT", 4),
			DefaultTimerSeconds:   getEnvInt("DEFAULT_TIMER_SECONDS", 300),
			MaxCustomTimerMinutes: getEnvInt("MAX_CUSTOM_TIMER_MINUTES", 120),
			RevealDelay:           getEnvDuration("REVEAL_DELAY", 2*time.Second),
			TickInterval:          getEnvDuration("TICK_INTERVAL", time.Second),
			StaleSessionTimeout:   getEnvDuration("STALE_SESSION_TIMEOUT", 2*time.Hour),
		},
		Generator: GeneratorConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			Timeout:        getEnvDuration("GENERATOR_TIMEOUT", 15*time.Second),
			RateLimitRPS:   getEnvFloat("GENERATOR_RATE_LIMIT_RPS", 2),
			RateLimitBurst: getEnvInt("GENERATOR_RATE_LIMIT_BURST", 4),
		},
		HTTP: HTTPConfig{
			RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 1),
			RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 5),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// SessionSettings returns the limits new sessions are created with
func (c *Config) SessionSettings() domain.Settings {
	return domain.Settings{
		MinPlayers:            c.Game.MinPlayers,
		MaxPlayers:            c.Game.MaxPlayers,
		DefaultPlayerCount:    c.Game.DefaultPlayerCount,
		DefaultTimerSeconds:   c.Game.DefaultTimerSeconds,
		MaxCustomTimerMinutes: c.Game.MaxCustomTimerMinutes,
	}
}

// GeminiConfig returns the generator settings for the materials provider
func (c *Config) GeminiConfig() materials.GeminiConfig {
	return materials.GeminiConfig{
		APIKey:         c.Generator.APIKey,
		Model:          c.Generator.Model,
		Timeout:        c.Generator.Timeout,
		RateLimitRPS:   c.Generator.RateLimitRPS,
		RateLimitBurst: c.Generator.RateLimitBurst,
	}
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("2s") or whole seconds ("2")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
