package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

// Field names accepted by Validate to restrict which fields are checked.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldBaseURL  = "base_url"
)

// InputValidator validates the inputs of both dashboards:
// models.Credentials, models.APIConfig, models.Tab, models.RawTarget and
// models.SectionKey, as values or pointers.
type InputValidator struct{}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.APIConfig:
		return v.validateAPIConfig(value, fields...)
	case *models.APIConfig:
		return v.validateAPIConfig(*value, fields...)
	case models.Tab:
		if !value.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidTab, value)
		}
		return nil
	case models.RawTarget:
		if !value.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidTarget, value)
		}
		return nil
	case models.SectionKey:
		return v.validateSection(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// An empty base URL is valid: it clears the stored override.
func (v *InputValidator) validateAPIConfig(cfg models.APIConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBaseURL}
	}

	for _, f := range fields {
		switch f {
		case FieldBaseURL:
			if strings.TrimSpace(cfg.BaseURL) == "" {
				continue
			}
			if _, err := adapter.NormalizeBaseURL(cfg.BaseURL); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateSection(key models.SectionKey) error {
	if key == "" || strings.ContainsAny(string(key), "/. ") {
		return fmt.Errorf("%w: %q", ErrInvalidSection, key)
	}
	return nil
}
