package adapter

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/config"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/utils"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/go-resty/resty/v2"
)

const (
	neonConfigPath  = "/v1/neon_config"
	dianaConfigPath = "/v1/diana_config"
	authPath        = "/auth"
)

type httpHubAdapter struct {
	client *utils.HTTPClient

	mu      sync.RWMutex
	baseURL string
	creds   models.Credentials

	logger *logger.Logger
}

// NewHTTPHubAdapter constructs the resty implementation of [HubAdapter].
// baseURL is normalized; call SetBaseURL later to move to another backend.
func NewHTTPHubAdapter(adapterCfg config.ClientAdapter, baseURL string, logger *logger.Logger) (HubAdapter, error) {
	h := &httpHubAdapter{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout, logger),
		logger: logger,
	}
	h.client.
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if err := h.SetBaseURL(baseURL); err != nil {
		return nil, err
	}

	return h, nil
}

// SetBaseURL implements [HubAdapter].
func (h *httpHubAdapter) SetBaseURL(raw string) error {
	normalized, err := NormalizeBaseURL(raw)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.baseURL = normalized
	return nil
}

// BaseURL implements [HubAdapter].
func (h *httpHubAdapter) BaseURL() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.baseURL
}

// SetCredentials implements [HubAdapter].
func (h *httpHubAdapter) SetCredentials(creds models.Credentials) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds = creds
}

// request builds a resty request against the current base URL carrying the
// stored credentials.
func (h *httpHubAdapter) request(ctx context.Context) (*resty.Request, string) {
	h.mu.RLock()
	baseURL, creds := h.baseURL, h.creds
	h.mu.RUnlock()

	req := h.client.R().SetContext(ctx)
	if !creds.Empty() {
		req.SetBasicAuth(creds.Username, creds.Password)
	}
	return req, baseURL
}

// Authenticate implements [HubAdapter].
func (h *httpHubAdapter) Authenticate(ctx context.Context, creds models.Credentials) error {
	req, baseURL := h.request(ctx)
	resp, err := req.
		SetBasicAuth(creds.Username, creds.Password).
		Post(baseURL + authPath)
	if err != nil {
		return fmt.Errorf("auth request: %w: %w", ErrTransport, err)
	}

	if msg, err := mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Msg("authentication rejected")
		return fmt.Errorf("authenticate: %w: %s", err, msg)
	}

	return nil
}

// FetchNeonConfig implements [HubAdapter].
func (h *httpHubAdapter) FetchNeonConfig(ctx context.Context) (models.NeonDocument, error) {
	return h.fetch(ctx, "neon_config", neonConfigPath, false)
}

// FetchDianaConfig implements [HubAdapter].
func (h *httpHubAdapter) FetchDianaConfig(ctx context.Context) (models.DianaDocument, error) {
	return h.fetch(ctx, "diana_config", dianaConfigPath, false)
}

// SaveNeonConfig implements [HubAdapter].
func (h *httpHubAdapter) SaveNeonConfig(ctx context.Context, partial models.Document) (models.NeonDocument, error) {
	return h.save(ctx, "neon_config", neonConfigPath, partial)
}

// SaveDianaConfig implements [HubAdapter].
func (h *httpHubAdapter) SaveDianaConfig(ctx context.Context, partial models.Document) (models.DianaDocument, error) {
	return h.save(ctx, "diana_config", dianaConfigPath, partial)
}

// FetchRaw implements [HubAdapter]. The request carries a "_" timestamp
// query parameter and no-cache headers.
func (h *httpHubAdapter) FetchRaw(ctx context.Context, target models.RawTarget) (models.Document, error) {
	if !target.Valid() {
		return nil, &FetchError{Document: string(target), Message: "unknown document", Err: ErrNotFound}
	}
	return h.fetch(ctx, string(target), target.Path(), true)
}

// SaveRaw implements [HubAdapter].
func (h *httpHubAdapter) SaveRaw(ctx context.Context, target models.RawTarget, doc models.Document) (models.Document, error) {
	if !target.Valid() {
		return nil, &SaveError{Document: string(target), Message: "unknown document", Err: ErrNotFound}
	}
	return h.save(ctx, string(target), target.Path(), doc)
}

func (h *httpHubAdapter) fetch(ctx context.Context, name, path string, bustCache bool) (models.Document, error) {
	var doc models.Document

	req, baseURL := h.request(ctx)
	req.SetResult(&doc)
	if bustCache {
		req.
			SetQueryParam("_", strconv.FormatInt(time.Now().UnixMilli(), 10)).
			SetHeader("Cache-Control", "no-cache, no-store, must-revalidate").
			SetHeader("Pragma", "no-cache")
	}

	resp, err := req.Get(baseURL + path)
	if err != nil {
		status, mapped := mapRequestError(resp, err)
		return nil, &FetchError{Document: name, StatusCode: status, Message: err.Error(), Err: mapped}
	}

	if msg, err := mapHTTPError(resp); err != nil {
		return nil, &FetchError{Document: name, StatusCode: resp.StatusCode(), Message: msg, Err: err}
	}
	if !isJSON(resp) {
		return nil, &FetchError{
			Document:   name,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("expected JSON, got %q", resp.Header().Get("Content-Type")),
			Err:        ErrNotJSON,
		}
	}
	if doc == nil {
		doc = models.Document{}
	}

	h.logger.Debug().Str("document", name).Int("keys", len(doc)).Msg("document fetched")
	return doc, nil
}

func (h *httpHubAdapter) save(ctx context.Context, name, path string, body models.Document) (models.Document, error) {
	var doc models.Document

	if body == nil {
		body = models.Document{}
	}

	req, baseURL := h.request(ctx)
	resp, err := req.
		SetBody(body).
		SetResult(&doc).
		Post(baseURL + path)
	if err != nil {
		status, mapped := mapRequestError(resp, err)
		return nil, &SaveError{Document: name, StatusCode: status, Message: err.Error(), Err: mapped}
	}

	if msg, err := mapHTTPError(resp); err != nil {
		return nil, &SaveError{Document: name, StatusCode: resp.StatusCode(), Message: msg, Err: err}
	}
	if !isJSON(resp) {
		return nil, &SaveError{
			Document:   name,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("expected JSON, got %q", resp.Header().Get("Content-Type")),
			Err:        ErrNotJSON,
		}
	}
	if doc == nil {
		doc = models.Document{}
	}

	h.logger.Info().Str("document", name).Int("keys", len(body)).Msg("document saved")
	return doc, nil
}
