package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every knob the application needs. It is loaded once in main
// and handed to constructors; no other package reads the environment.
type Config struct {
	HTTPAddr     string
	DatabaseURL  string
	RedisAddr    string
	JWTSecret    string
	JWTTTL       time.Duration
	RefreshTTL   time.Duration
	OTPTTL       time.Duration
	OTPLength    int
	OTPMaxTries  int
	MediaDir     string
	MediaBaseURL string
	Env          string
}

// Load reads configuration from the environment (and an optional .env file)
// with sensible development defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env is fine
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_TTL", "15m")
	v.SetDefault("REFRESH_TTL", "720h")
	v.SetDefault("OTP_TTL", "5m")
	v.SetDefault("OTP_LENGTH", 6)
	v.SetDefault("OTP_MAX_TRIES", 5)
	v.SetDefault("MEDIA_DIR", "./media")
	v.SetDefault("MEDIA_BASE_URL", "http://localhost:8080/media")
	v.SetDefault("APP_ENV", "development")

	cfg := &Config{
		HTTPAddr:     v.GetString("HTTP_ADDR"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		RedisAddr:    v.GetString("REDIS_ADDR"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTTTL:       v.GetDuration("JWT_TTL"),
		RefreshTTL:   v.GetDuration("REFRESH_TTL"),
		OTPTTL:       v.GetDuration("OTP_TTL"),
		OTPLength:    v.GetInt("OTP_LENGTH"),
		OTPMaxTries:  v.GetInt("OTP_MAX_TRIES"),
		MediaDir:     v.GetString("MEDIA_DIR"),
		MediaBaseURL: v.GetString("MEDIA_BASE_URL"),
		Env:          v.GetString("APP_ENV"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET not found")
	}

	return cfg, nil
}
