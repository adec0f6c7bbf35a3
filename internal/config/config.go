package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Envoy     EnvoyConfig     `json:"envoy"`
	Store     string          `json:"store"`
	Redis     RedisConfig     `json:"redis"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// EnvoyConfig holds the integration credentials and the names the platform
// uses for the sign-out event and visitor timestamp attributes.
type EnvoyConfig struct {
	ClientID         string `json:"client_id"`
	ClientSecret     string `json:"client_secret,omitempty"`
	VerifySignature  bool   `json:"verify_signature"`
	SignOutEventType string `json:"sign_out_event_type"`
	SignInAttribute  string `json:"sign_in_attribute"`
	SignOutAttribute string `json:"sign_out_attribute"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
	Key      string `json:"key"`
}

type RateLimitConfig struct {
	RPS   int           `json:"rps"`
	Burst int           `json:"burst"`
	TTL   time.Duration `json:"ttl"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            normalizePort(getEnv("PORT", "3000")),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Envoy: EnvoyConfig{
			ClientID:         os.Getenv("ENVOY_CLIENT_ID"),
			ClientSecret:     os.Getenv("ENVOY_CLIENT_SECRET"),
			VerifySignature:  getEnvBool("ENVOY_VERIFY_SIGNATURE", true),
			SignOutEventType: getEnv("ENVOY_SIGN_OUT_EVENT", "visitor.sign_out"),
			SignInAttribute:  getEnv("ENVOY_SIGN_IN_ATTR", "sign-in-time"),
			SignOutAttribute: getEnv("ENVOY_SIGN_OUT_ATTR", "sign-out-time"),
		},
		Store: strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Key:      getEnv("REDIS_KEY", "duration:allowed_minutes"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvInt("RATE_LIMIT_RPS", 10),
			Burst: getEnvInt("RATE_LIMIT_BURST", 20),
			TTL:   getEnvDuration("RATE_LIMIT_TTL", 5*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("store", cfg.Store),
		slog.Bool("verify_signature", cfg.Envoy.VerifySignature),
		slog.String("sign_out_event", cfg.Envoy.SignOutEventType))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Envoy.ClientID == "" || c.Envoy.ClientSecret == "" {
		return errors.New("missing required environment variables ENVOY_CLIENT_ID and/or ENVOY_CLIENT_SECRET")
	}

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("PORT must be a number like 3000 or ':3000'")
	}
	if _, err := strconv.Atoi(c.Http.Port[1:]); err != nil {
		return fmt.Errorf("PORT %q is not a number", c.Http.Port[1:])
	}

	if c.Envoy.SignOutEventType == "" || c.Envoy.SignInAttribute == "" || c.Envoy.SignOutAttribute == "" {
		return errors.New("ENVOY_SIGN_OUT_EVENT, ENVOY_SIGN_IN_ATTR and ENVOY_SIGN_OUT_ATTR must not be empty")
	}

	switch c.Store {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" || c.Redis.Key == "" {
			return errors.New("REDIS_ADDR and REDIS_KEY required for STORE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreMemory, StoreRedis, c.Store)
	}

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return nil
}

func normalizePort(p string) string {
	if p != "" && !strings.HasPrefix(p, ":") {
		return ":" + p
	}
	return p
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
