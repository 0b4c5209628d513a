package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func getEnvAsString(key string, defaultVal string) string {
	if value, exists := lookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if valueStr, exists := lookupEnv(key); exists {
		if value, err := strconv.Atoi(strings.TrimSpace(valueStr)); err == nil {
			return value
		}
	}
	return defaultVal
}

// getEnvAsTimeDuration accepts Go duration syntax ("15s", "1m30s") or a plain
// number of seconds.
func getEnvAsTimeDuration(key string, defaultVal time.Duration) time.Duration {
	valueStr, exists := lookupEnv(key)
	if !exists {
		return defaultVal
	}
	valueStr = strings.TrimSpace(valueStr)

	if value, err := time.ParseDuration(valueStr); err == nil && value >= 0 {
		return value
	}
	if value, err := strconv.Atoi(valueStr); err == nil && value >= 0 {
		return time.Duration(value) * time.Second
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if valueStr, exists := lookupEnv(key); exists {
		if value, err := strconv.ParseBool(strings.TrimSpace(valueStr)); err == nil {
			return value
		}
	}
	return defaultVal
}

func getEnvAsSlice(key string, defaultVal []string) []string {
	if valueStr, exists := lookupEnv(key); exists {
		// Split by comma and trim whitespace
		parts := strings.Split(valueStr, ",")
		result := make([]string, 0, len(parts))
		for _, v := range parts {
			trimmed := strings.TrimSpace(v)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultVal
}

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
