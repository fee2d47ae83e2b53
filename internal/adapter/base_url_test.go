package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "neon-hub.local", want: "http://neon-hub.local"},
		{name: "trims slash", raw: "https://hub.example.com/", want: "https://hub.example.com"},
		{name: "keeps port and path", raw: "http://10.0.0.2:8000/api/", want: "http://10.0.0.2:8000/api"},
		{name: "drops query", raw: "http://hub/?x=1", want: "http://hub"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "bad scheme", raw: "ftp://hub", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBaseURL_Order(t *testing.T) {
	got, err := ResolveBaseURL("http://stored", "http://configured", DefaultOrigin)
	require.NoError(t, err)
	assert.Equal(t, "http://stored", got)

	got, err = ResolveBaseURL("", "configured:8000", DefaultOrigin)
	require.NoError(t, err)
	assert.Equal(t, "http://configured:8000", got)

	got, err = ResolveBaseURL("", "", "https://origin.example/")
	require.NoError(t, err)
	assert.Equal(t, "https://origin.example", got)
}

func TestResolveBaseURL_SkipsInvalid(t *testing.T) {
	got, err := ResolveBaseURL("ftp://broken", "", DefaultOrigin)
	require.NoError(t, err)
	assert.Equal(t, DefaultOrigin, got)
}

func TestResolveBaseURL_NothingUsable(t *testing.T) {
	_, err := ResolveBaseURL("", "", "")
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}
