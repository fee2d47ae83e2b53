package utils

import (
	"strings"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests are bounded by timeout.
// A zero timeout leaves resty's default (no timeout). resty's own warnings
// go to log instead of stderr, which the terminal dashboard owns.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(timeout time.Duration, log *logger.Logger) *HTTPClient {
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().SetLogger(restyLogger{log: log})
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// restyLogger implements resty.Logger on zerolog.
type restyLogger struct {
	log *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.log.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.log.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.log.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
