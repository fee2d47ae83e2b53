// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputValidator(t *testing.T) {
	require.NotNil(t, NewInputValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	require.NoError(t, v.Validate(ctx, &models.Credentials{Username: "neon", Password: "neon"}))
	require.NoError(t, v.Validate(ctx, &models.APIConfig{BaseURL: "hub.local"}))
}

func TestValidate_Credentials(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Username: "neon", Password: "neon"}},
		{name: "blank username", creds: models.Credentials{Username: "  ", Password: "neon"}, wantErr: ErrEmptyUsername},
		{name: "empty password", creds: models.Credentials{Username: "neon"}, wantErr: ErrEmptyPassword},
		{name: "username only", creds: models.Credentials{Username: "neon"}, fields: []string{FieldUsername}},
		{name: "unknown field", creds: models.Credentials{Username: "neon"}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_APIConfig(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.APIConfig{}))
	assert.NoError(t, v.Validate(ctx, models.APIConfig{BaseURL: "https://hub.local:8443/"}))
	assert.ErrorIs(t, v.Validate(ctx, models.APIConfig{BaseURL: "ftp://hub.local"}), ErrInvalidBaseURL)
	assert.ErrorIs(t, v.Validate(ctx, models.APIConfig{BaseURL: "http://"}), ErrInvalidBaseURL)
}

func TestValidate_Enums(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.TabAdvanced))
	assert.ErrorIs(t, v.Validate(ctx, models.Tab("admin")), ErrInvalidTab)

	assert.NoError(t, v.Validate(ctx, models.RawDiana))
	assert.ErrorIs(t, v.Validate(ctx, models.RawTarget("neon_config")), ErrInvalidTarget)

	assert.NoError(t, v.Validate(ctx, models.SectionIRIS))
	assert.ErrorIs(t, v.Validate(ctx, models.SectionKey("")), ErrInvalidSection)
	assert.ErrorIs(t, v.Validate(ctx, models.SectionKey("../etc")), ErrInvalidSection)
}
