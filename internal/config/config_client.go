package config

import (
	"fmt"
	"time"
)

// ClientApp holds application settings of the terminal dashboard.
type ClientApp struct {
	// LogLevel is the minimum zerolog level written to the log file.
	LogLevel string
	// SecretKey seals the remembered session password. Empty disables
	// remembering the session.
	SecretKey string
}

// ClientAdapter holds backend settings used by the gateway.
type ClientAdapter struct {
	// BaseURL is the configured backend location, used when no override
	// is stored.
	BaseURL string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the preference store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	AutoSaveDelay time.Duration
}

// ClientConfig is the terminal dashboard configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the terminal dashboard config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:  cfg.App.LogLevel,
			SecretKey: cfg.App.SecretKey,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{AutoSaveDelay: cfg.Workers.AutoSaveDelay},
	}

	return clientCfg, clientCfg.validate()
}

// WebConfig is the web dashboard configuration. It embeds the client view
// because each browser session runs the same services as the terminal client.
type WebConfig struct {
	ClientConfig

	App    WebApp
	Server WebServer
}

// WebApp holds web session settings.
type WebApp struct {
	LogLevel        string
	SessionSignKey  string
	SessionIssuer   string
	SessionDuration time.Duration
}

// WebServer holds the listen settings.
type WebServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// GetWebConfig builds and validates the web dashboard config view.
func GetWebConfig() (*WebConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newWebConfig(cfg)
}

func newWebConfig(cfg *StructuredConfig) (*WebConfig, error) {
	clientCfg, err := newClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	webCfg := &WebConfig{
		ClientConfig: *clientCfg,
		App: WebApp{
			LogLevel:        cfg.App.LogLevel,
			SessionSignKey:  cfg.App.SessionSignKey,
			SessionIssuer:   cfg.App.SessionIssuer,
			SessionDuration: cfg.App.SessionDuration,
		},
		Server: WebServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}

	return webCfg, webCfg.validate()
}
