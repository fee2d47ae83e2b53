package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultOrigin is the fallback backend location of the terminal dashboard,
// which has no page origin of its own.
const DefaultOrigin = "http://localhost"

// NormalizeBaseURL trims raw, adds an http scheme when none is given and drops
// trailing slashes. It fails for empty input, non-http(s) schemes and URLs
// without a host.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: address must include host", ErrInvalidBaseURL)
	}
	u.RawQuery = ""
	u.Fragment = ""

	return strings.TrimRight(u.String(), "/"), nil
}

// ResolveBaseURL picks the backend location: the stored override first, then
// the configured default, then origin. Candidates that fail to normalize are
// skipped.
func ResolveBaseURL(stored, configured, origin string) (string, error) {
	for _, candidate := range []string{stored, configured, origin} {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		if normalized, err := NormalizeBaseURL(candidate); err == nil {
			return normalized, nil
		}
	}

	return "", fmt.Errorf("%w: no usable backend location", ErrInvalidBaseURL)
}
