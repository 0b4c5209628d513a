package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Metrics   *MetricsConfig
	Readiness *ReadinessConfig
}

type ServerConfig struct {
	AppName         string        // Kubernetes Production API
	Environment     string        // development, staging, production
	Version         string        // 1.0.0
	LogLevel        string        // debug, info, warn, error
	Port            int           // 8080
	ReadTimeout     time.Duration // 15s
	WriteTimeout    time.Duration // 15s
	IdleTimeout     time.Duration // 60s
	ShutdownTimeout time.Duration // 10s
	MaxHeaderBytes  int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int // in seconds
}

type MetricsConfig struct {
	RuntimeCollectors bool // go_* and process_* series
}

type ReadinessConfig struct {
	CheckTimeout time.Duration
}
