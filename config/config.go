package config

import (
	"log"
	"os"
	"strconv"

	"github.com/bmkabile/fixmyward/store"
)

// Config is everything the service reads from the environment.
type Config struct {
	Port           string
	JWTSecret      string
	Domain         string
	Environment    string
	RedisAddress   string
	RedisPassword  string
	ReportQuota    int
	MapThresholds  store.MapThresholds
	AllowedOrigins []string
}

// Load reads the environment. JWT_SECRET is required; everything else has a
// default. Call after godotenv has run.
func Load() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("Please define the JWT_SECRET environment variable")
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     secret,
		Domain:        os.Getenv("DOMAIN"),
		Environment:   os.Getenv("GO_ENV"),
		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ReportQuota:   getEnvInt("REPORT_DAILY_QUOTA", 10),
		MapThresholds: store.MapThresholds{
			High:   getEnvInt("MAP_HIGH_THRESHOLD", store.DefaultMapThresholds.High),
			Medium: getEnvInt("MAP_MEDIUM_THRESHOLD", store.DefaultMapThresholds.Medium),
		},
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = []string{origins}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
