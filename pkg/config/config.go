package config

import "os"

type Config struct {
	Port        string
	Env         string
	PostgresUrl string
	JWTSecret   string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresUrl: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:   getEnv("JWT_SECRET", "supersecretjwtkey"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
