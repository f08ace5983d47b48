package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting, loaded once at startup.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string

	JWTAccessSecret       string
	JWTAccessExpiresIn    time.Duration
	JWTRefreshSecret      string
	JWTRefreshExpiresIn   time.Duration
	JWTResetPassSecret    string
	JWTResetPassExpiresIn time.Duration
	ResetPasswordUILink   string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string
}

var cfg *Config

// Load reads .env (if present) and the process environment, validates the
// required settings and caches the result. Subsequent calls return the
// cached config.
func Load() *Config {
	if cfg != nil {
		return cfg
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	c := &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),

		JWTAccessSecret:       os.Getenv("JWT_ACCESS_SECRET"),
		JWTAccessExpiresIn:    getDuration("JWT_ACCESS_EXPIRES_IN", 24*time.Hour),
		JWTRefreshSecret:      os.Getenv("JWT_REFRESH_SECRET"),
		JWTRefreshExpiresIn:   getDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
		JWTResetPassSecret:    os.Getenv("JWT_RESET_PASS_SECRET"),
		JWTResetPassExpiresIn: getDuration("JWT_RESET_PASS_EXPIRES_IN", 10*time.Minute),
		ResetPasswordUILink:   os.Getenv("RESET_PASSWORD_UI_LINK"),

		SMTPHost:  os.Getenv("SMTP_HOST"),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),

		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}
	c.SMTPPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))

	if err := c.validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	cfg = c
	return cfg
}

// Get returns the loaded config, loading it on first use.
func Get() *Config {
	if cfg == nil {
		return Load()
	}
	return cfg
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if c.JWTAccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is not set")
	}
	if c.JWTRefreshSecret == "" {
		return fmt.Errorf("JWT_REFRESH_SECRET is not set")
	}
	if c.JWTResetPassSecret == "" {
		c.JWTResetPassSecret = c.JWTAccessSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid duration for %s: %v. Using default.", key, v)
		return fallback
	}
	return d
}
