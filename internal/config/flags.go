package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-base-url hub backend base URL (e.g. "http://neon-hub.local")
//	-a web dashboard listen address in format [host]:[port]
//	-d preference database DSN
//	-c/-config json file path with configs
//	-log-level zerolog level (debug, info, warn, error)
//	-session-sign-key web session signing key
//	-session-issuer web session issuer name
//	-session-duration web session duration (e.g., "12h")
//	-secret-key key sealing the remembered terminal session
//	-request-timeout backend request timeout (e.g., "15s")
//	-server-timeout inbound request timeout (e.g., "30s")
//	-autosave-delay quiet period before auto-save (e.g., "1s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var secretKey string
	var requestTimeout time.Duration
	var serverTimeout time.Duration
	var autoSaveDelay time.Duration

	fs := flag.NewFlagSet("hubconfig", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&baseURL, "base-url", "", "Hub backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Preference database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session signing key")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 12h)")
	fs.StringVar(&secretKey, "secret-key", "", "Remembered session secret key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 15s)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Inbound request timeout (e.g., 30s)")
	fs.DurationVar(&autoSaveDelay, "autosave-delay", 0, "Auto-save quiet period (e.g., 1s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:        logLevel,
			SessionSignKey:  sessionSignKey,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
			SecretKey:       secretKey,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Workers: Workers{
			AutoSaveDelay: autoSaveDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on every interface. Other hosts must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
