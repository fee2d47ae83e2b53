package config

import "time"

// Default values applied to fields no source has set.
const (
	DefaultLogLevel        = "debug"
	DefaultBaseURL         = "http://localhost"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultDSN             = "hubconfig.db"
	DefaultHTTPAddress     = "0.0.0.0:8080"
	DefaultSessionIssuer   = "neon-hub-config"
	DefaultSessionDuration = 12 * time.Hour
	DefaultAutoSaveDelay   = time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:        DefaultLogLevel,
			SessionIssuer:   DefaultSessionIssuer,
			SessionDuration: DefaultSessionDuration,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			AutoSaveDelay: DefaultAutoSaveDelay,
		},
	}
}
