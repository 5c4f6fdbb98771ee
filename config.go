package hexforge

import "os"

type SessionConfig struct {
	StatsdAddress string
	LogLevel      string
}

func GetSessionConfig() SessionConfig {
	return SessionConfig{
		StatsdAddress: getEnv("HEXFORGE_STATSD_ADDRESS", ""),
		LogLevel:      getEnv("HEXFORGE_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
