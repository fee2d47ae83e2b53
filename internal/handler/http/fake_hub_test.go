package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/NeonGeckoCom/neon-hub-config/internal/store"
)

// fakeHub is an in-memory hub backend speaking the REST API the gateway
// consumes.
type fakeHub struct {
	mu       sync.Mutex
	neon     map[string]any
	diana    map[string]any
	posts    map[string][]map[string]any
	user     string
	password string
	// rejectConfig answers every config request with 401.
	rejectConfig bool
}

func newFakeHub(t *testing.T) (*fakeHub, *httptest.Server) {
	t.Helper()
	hub := &fakeHub{
		neon: map[string]any{
			"lang":     "en-us",
			"logging":  map[string]any{"LOG_LEVEL": "INFO"},
			"units":    map[string]any{"system_unit": "metric", "time_format": "half"},
			"location": map[string]any{"city": "Seattle"},
			"api_keys": map[string]any{"wolfram_alpha": "wa-secret"},
		},
		diana: map[string]any{
			"iris": map[string]any{"default_lang": "en-us"},
			"hana": map[string]any{"fastapi_title": "HANA"},
		},
		posts:    map[string][]map[string]any{},
		user:     "neon",
		password: "neon",
	}
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)
	return hub, srv
}

func (f *fakeHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, pass, ok := r.BasicAuth()
	if !ok || user != f.user || pass != f.password {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if r.URL.Path == "/auth" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
		return
	}
	if f.rejectConfig {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var doc map[string]any
	switch r.URL.Path {
	case "/v1/neon_config", "/v1/neon_user_config":
		doc = f.neon
	case "/v1/diana_config":
		doc = f.diana
	default:
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodPost {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.posts[r.URL.Path] = append(f.posts[r.URL.Path], body)
		for k, v := range body {
			doc[k] = v
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func (f *fakeHub) postsTo(path string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.posts[path]...)
}

// memoryPreferences is an in-memory [store.PreferencesRepository].
type memoryPreferences struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryPreferences() *memoryPreferences {
	return &memoryPreferences{values: map[string]string{}}
}

func (m *memoryPreferences) Get(_ context.Context, scope, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[scope+"/"+key]
	if !ok {
		return "", store.ErrPreferenceNotFound
	}
	return v, nil
}

func (m *memoryPreferences) Set(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[scope+"/"+key] = value
	return nil
}

func (m *memoryPreferences) Delete(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, scope+"/"+key)
	return nil
}
