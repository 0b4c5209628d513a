package config

import (
	"fmt"
	"kube_probe_api/structs"
	"strings"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

// GetConfig returns the process-wide configuration, read from the environment
// on first use.
func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = Load()
	})
	return configInstance
}

// Load reads a fresh configuration from the environment. Unset or invalid
// values fall back to their defaults.
func Load() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:         getEnvAsString("APP_NAME", "Kubernetes Production API"),
			Environment:     getEnvAsString("APP_ENV", "development"),
			Version:         getEnvAsString("APP_VERSION", "1.0.0"),
			LogLevel:        strings.ToLower(getEnvAsString("LOG_LEVEL", "info")),
			Port:            getPort(),
			ReadTimeout:     getEnvAsTimeDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsTimeDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvAsTimeDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvAsTimeDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxHeaderBytes:  getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
		},
		Cors: &structs.CorsConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "OPTIONS"}),
			AllowedHeaders: getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Accept"}),
			MaxAge:         getEnvAsInt("CORS_MAX_AGE", 300),
		},
		Metrics: &structs.MetricsConfig{
			RuntimeCollectors: getEnvAsBool("METRICS_RUNTIME_COLLECTORS", true),
		},
		Readiness: &structs.ReadinessConfig{
			CheckTimeout: getEnvAsTimeDuration("READINESS_TIMEOUT", 2*time.Second),
		},
	}
}

func getPort() int {
	port := getEnvAsInt("PORT", 8080)
	if port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

// Addr is the listen address. An empty host binds every interface.
func Addr(cfg *structs.Config) string {
	return fmt.Sprintf(":%d", cfg.Server.Port)
}
