package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/config"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	hub      *fakeHub
	hubURL   string
	handler  *Handler
	server   *httptest.Server
	sessions *SessionRegistry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	hub, hubSrv := newFakeHub(t)
	prefs := newMemoryPreferences()

	sessions := NewSessionRegistry(time.Hour)
	h, err := NewHandler(HandlerParams{
		Sessions: sessions,
		NewServices: func(username string) (*service.ClientServices, error) {
			gw, err := adapter.NewHTTPHubAdapter(config.ClientAdapter{RequestTimeout: 5 * time.Second}, hubSrv.URL, logger.Nop())
			if err != nil {
				return nil, err
			}
			return service.NewClientServices(service.ClientServicesParams{
				Hub:         gw,
				Preferences: prefs,
				Scope:       username,
				BaseURL:     hubSrv.URL,
				Logger:      logger.Nop(),
			}), nil
		},
		Validator: validators.NewInputValidator(),
		Session:   SessionSettings{SignKey: "test-key", Issuer: "hubconfig-test", Duration: time.Hour},
		Origin:    adapter.DefaultOrigin,
		Logger:    logger.Nop(),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return &testEnv{hub: hub, hubURL: hubSrv.URL, handler: h, server: srv, sessions: sessions}
}

func (e *testEnv) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

type page struct {
	status int
	path   string
	body   string
}

func do(t *testing.T, c *http.Client, method, u string, form url.Values) page {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, u, body)
	require.NoError(t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return page{status: resp.StatusCode, path: resp.Request.URL.Path, body: string(b)}
}

func (e *testEnv) login(t *testing.T, c *http.Client) page {
	t.Helper()
	p := do(t, c, http.MethodPost, e.server.URL+"/login", url.Values{"username": {"neon"}, "password": {"neon"}})
	require.Equal(t, http.StatusOK, p.status, p.body)
	return p
}

// ── login ───────────────────────────────────────────────────────────────────

func TestNewHandler_MissingDependency(t *testing.T) {
	_, err := NewHandler(HandlerParams{Logger: logger.Nop()})
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestProtectedPage_RedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)

	p := do(t, env.client(t), http.MethodGet, env.server.URL+"/", nil)

	assert.Equal(t, "/login", p.path)
	assert.Contains(t, p.body, "Neon Hub Login")
}

func TestAPIState_Unauthorized(t *testing.T) {
	env := newTestEnv(t)

	p := do(t, env.client(t), http.MethodGet, env.server.URL+"/api/state", nil)

	assert.Equal(t, http.StatusUnauthorized, p.status)
}

func TestLogin_EmptyFields(t *testing.T) {
	env := newTestEnv(t)

	p := do(t, env.client(t), http.MethodPost, env.server.URL+"/login", url.Values{"username": {"neon"}})

	assert.Equal(t, http.StatusBadRequest, p.status)
	assert.Contains(t, p.body, app.MsgLoginRequired)
	assert.Equal(t, 0, env.sessions.Len())
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	p := do(t, env.client(t), http.MethodPost, env.server.URL+"/login", url.Values{"username": {"neon"}, "password": {"nope"}})

	assert.Equal(t, http.StatusUnauthorized, p.status)
	assert.Contains(t, p.body, app.MsgInvalidLoginPassword)
	assert.Equal(t, 0, env.sessions.Len())
}

func TestLogin_OpensConfigTab(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)

	p := env.login(t, c)

	assert.Equal(t, "/tabs/config", p.path)
	assert.Contains(t, p.body, "General Settings")
	assert.Contains(t, p.body, "Seattle")
	assert.Contains(t, p.body, "HANA Configuration")
	assert.Equal(t, 1, env.sessions.Len())
}

func TestLogout_EndsSession(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/logout", url.Values{})
	assert.Equal(t, "/login", p.path)
	assert.Equal(t, 0, env.sessions.Len())

	p = do(t, c, http.MethodGet, env.server.URL+"/tabs/config", nil)
	assert.Equal(t, "/login", p.path)
}

func TestSessions_AreIsolated(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.client(t), env.client(t)
	env.login(t, alice)
	env.login(t, bob)

	p := do(t, alice, http.MethodPost, env.server.URL+"/config/sections/api_keys/reveal/wolfram_alpha", url.Values{"f.wolfram_alpha": {"alice-key"}})
	assert.Contains(t, p.body, `value="alice-key" type="text"`)

	var state stateResponse
	p = do(t, bob, http.MethodGet, env.server.URL+"/api/state", nil)
	require.NoError(t, json.Unmarshal([]byte(p.body), &state))
	assert.Equal(t, map[string]any{"wolfram_alpha": "wa-secret"}, state.State.Config["api_keys"])
	assert.Equal(t, 2, env.sessions.Len())
}

// ── tabs ────────────────────────────────────────────────────────────────────

func TestTab_PersistsActiveTab(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodGet, env.server.URL+"/tabs/updates", nil)
	assert.Contains(t, p.body, "System Updates")
	assert.Contains(t, p.body, "Yacht interface")

	p = do(t, c, http.MethodGet, env.server.URL+"/", nil)
	assert.Equal(t, "/tabs/updates", p.path)
}

func TestTab_Unknown(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodGet, env.server.URL+"/tabs/nope", nil)
	assert.Equal(t, http.StatusNotFound, p.status)
}

func TestTab_AdvancedRedirectsToFirstEditor(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodGet, env.server.URL+"/tabs/advanced", nil)

	assert.Equal(t, "/advanced/neon_user_config", p.path)
	assert.Contains(t, p.body, "Neon Configuration")
	assert.Contains(t, p.body, "system_unit: metric")
}

// ── configuration ───────────────────────────────────────────────────────────

func TestSaveSection_PostsOnlyOwningDocument(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/config/sections/units",
		url.Values{"f.system_unit": {"imperial"}, "f.time_format": {"half"}})

	assert.Equal(t, http.StatusOK, p.status)
	assert.Contains(t, p.body, "Saved Units of Measurement")

	posts := env.hub.postsTo("/v1/neon_config")
	require.Len(t, posts, 1)
	assert.Equal(t, map[string]any{"units": map[string]any{"system_unit": "imperial", "time_format": "half"}}, posts[0])
	assert.Empty(t, env.hub.postsTo("/v1/diana_config"))
}

func TestSaveSection_DianaSection(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	do(t, c, http.MethodPost, env.server.URL+"/config/sections/iris", url.Values{"f.default_lang": {"de-de"}})

	posts := env.hub.postsTo("/v1/diana_config")
	require.Len(t, posts, 1)
	assert.Contains(t, posts[0], "iris")
	assert.Contains(t, posts[0], "hana")
	assert.Empty(t, env.hub.postsTo("/v1/neon_config"))
}

func TestSaveSection_UnknownSection(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/config/sections/nope", url.Values{})
	assert.Equal(t, http.StatusNotFound, p.status)
}

func TestSaveSection_BackendRejectsCredentials(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	env.hub.mu.Lock()
	env.hub.rejectConfig = true
	env.hub.mu.Unlock()

	p := do(t, c, http.MethodPost, env.server.URL+"/config/sections/units", url.Values{"f.system_unit": {"imperial"}})

	assert.Equal(t, "/login", p.path)
	assert.Equal(t, 0, env.sessions.Len())
}

func TestToggleReveal(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodGet, env.server.URL+"/tabs/config", nil)
	assert.Contains(t, p.body, `name="f.wolfram_alpha" value="wa-secret" type="password"`)

	p = do(t, c, http.MethodPost, env.server.URL+"/config/sections/api_keys/reveal/wolfram_alpha", url.Values{})
	assert.Contains(t, p.body, `name="f.wolfram_alpha" value="wa-secret" type="text"`)
}

func TestToggleReveal_NotSecret(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/config/sections/location/reveal/nope", url.Values{})
	assert.Equal(t, http.StatusNotFound, p.status)
}

// ── advanced ────────────────────────────────────────────────────────────────

func TestAdvanced_InvalidYAMLIsNotSaved(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/advanced/diana_config", url.Values{"yaml": {"iris: [unclosed"}})

	assert.Equal(t, http.StatusUnprocessableEntity, p.status)
	assert.Contains(t, p.body, app.MsgCannotSaveInvalidYAML)
	assert.Contains(t, p.body, "iris: [unclosed")
	assert.Empty(t, env.hub.postsTo("/v1/diana_config"))
}

func TestAdvanced_SaveValidYAML(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/advanced/diana_config",
		url.Values{"yaml": {"iris:\r\n  default_lang: de-de\r\n"}, "action": {"save"}})

	assert.Equal(t, http.StatusOK, p.status)
	assert.Contains(t, p.body, "Saved Diana Configuration")

	posts := env.hub.postsTo("/v1/diana_config")
	require.Len(t, posts, 1)
	assert.Equal(t, map[string]any{"iris": map[string]any{"default_lang": "de-de"}}, posts[0])
}

func TestAdvanced_UnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodGet, env.server.URL+"/advanced/secrets", nil)
	assert.Equal(t, http.StatusNotFound, p.status)
}

// ── settings ────────────────────────────────────────────────────────────────

func TestSetBaseURL_Invalid(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/settings/base-url", url.Values{"base_url": {"ftp://hub"}})

	assert.Contains(t, p.body, app.MsgInvalidBaseURL)
}

func TestSetBaseURL_StoredPerUser(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/settings/base-url", url.Values{"base_url": {env.hubURL + "/"}})
	assert.Contains(t, p.body, "Backend: "+env.hubURL)

	var state stateResponse
	p = do(t, c, http.MethodGet, env.server.URL+"/api/state", nil)
	require.NoError(t, json.Unmarshal([]byte(p.body), &state))
	assert.Equal(t, env.hubURL, state.BaseURL)
	assert.Equal(t, "neon", state.Username)
}

func TestLogin_BackendOverrideRecoversFromBadStoredURL(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	do(t, c, http.MethodPost, env.server.URL+"/settings/base-url", url.Values{"base_url": {"http://127.0.0.1:1"}})
	do(t, c, http.MethodPost, env.server.URL+"/logout", nil)

	creds := url.Values{"username": {"neon"}, "password": {"neon"}}
	p := do(t, c, http.MethodPost, env.server.URL+"/login", creds)
	require.Equal(t, http.StatusBadGateway, p.status)
	assert.Contains(t, p.body, `name="base_url"`)

	withOverride := url.Values{"username": {"neon"}, "password": {"neon"}, "base_url": {env.hubURL}}
	p = do(t, c, http.MethodPost, env.server.URL+"/login", withOverride)
	require.Equal(t, http.StatusOK, p.status, p.body)
	assert.Equal(t, "/tabs/config", p.path)

	var state stateResponse
	p = do(t, c, http.MethodGet, env.server.URL+"/api/state", nil)
	require.NoError(t, json.Unmarshal([]byte(p.body), &state))
	assert.Equal(t, env.hubURL, state.BaseURL)

	// the working backend was saved, so a plain login works again
	do(t, c, http.MethodPost, env.server.URL+"/logout", nil)
	env.login(t, c)
}

func TestLogin_InvalidBackendOverride(t *testing.T) {
	env := newTestEnv(t)

	p := do(t, env.client(t), http.MethodPost, env.server.URL+"/login",
		url.Values{"username": {"neon"}, "password": {"neon"}, "base_url": {"ftp://hub"}})

	assert.Equal(t, http.StatusBadRequest, p.status)
	assert.Contains(t, p.body, app.MsgInvalidBaseURL)
	assert.Equal(t, 0, env.sessions.Len())
}

func TestLogin_FailedOverrideIsNotStored(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)

	p := do(t, c, http.MethodPost, env.server.URL+"/login",
		url.Values{"username": {"neon"}, "password": {"neon"}, "base_url": {"http://127.0.0.1:1"}})
	require.Equal(t, http.StatusBadGateway, p.status)

	env.login(t, c)
}

func TestToggleTheme(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.login(t, c)

	p := do(t, c, http.MethodPost, env.server.URL+"/settings/theme", url.Values{})
	assert.Contains(t, p.body, `<body class="dark">`)

	p = do(t, c, http.MethodPost, env.server.URL+"/settings/theme", url.Values{})
	assert.Contains(t, p.body, `<body class="light">`)
}

// ── misc ────────────────────────────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	p := do(t, env.client(t), http.MethodGet, env.server.URL+"/healthz", nil)

	assert.Equal(t, http.StatusOK, p.status)
	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(p.body), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestWrongMethod_NotFound(t *testing.T) {
	env := newTestEnv(t)

	p := do(t, env.client(t), http.MethodDelete, env.server.URL+"/login", nil)
	assert.Equal(t, http.StatusNotFound, p.status)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", adapter.ErrUnauthorized, http.StatusUnauthorized},
		{"save in progress", service.ErrSaveInProgress, http.StatusConflict},
		{"invalid yaml", service.ErrInvalidYAML, http.StatusUnprocessableEntity},
		{"fetch error", &adapter.FetchError{Document: "neon_config", StatusCode: 500, Err: adapter.ErrInternalServerError}, http.StatusBadGateway},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

