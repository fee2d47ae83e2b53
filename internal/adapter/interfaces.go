// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the gateway to the Neon Hub configuration backend.
//
// The primary abstraction is [HubAdapter], which decouples the service layer
// from the REST transport. The package ships one implementation,
// [NewHTTPHubAdapter], built on resty.
//
// Failed reads are reported as [*FetchError] and failed writes as
// [*SaveError]. Both unwrap to the status sentinels defined in errors.go so
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/NeonGeckoCom/neon-hub-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/hub_adapter_mock.go -package=mock

// HubAdapter defines communication with the hub backend. Every call is a
// single request; there are no retries.
type HubAdapter interface {
	// SetBaseURL validates, normalizes and stores the backend location used by
	// all subsequent requests.
	SetBaseURL(raw string) error

	// BaseURL returns the normalized backend location.
	BaseURL() string

	// SetCredentials stores the HTTP basic credentials attached to every
	// subsequent request. Empty credentials remove the header.
	SetCredentials(creds models.Credentials)

	// Authenticate checks creds against POST /auth. It does not store them.
	Authenticate(ctx context.Context, creds models.Credentials) error

	// FetchNeonConfig reads GET /v1/neon_config.
	FetchNeonConfig(ctx context.Context) (models.NeonDocument, error)

	// FetchDianaConfig reads GET /v1/diana_config.
	FetchDianaConfig(ctx context.Context) (models.DianaDocument, error)

	// SaveNeonConfig posts a partial Neon document and returns the document
	// the backend reports after the write.
	SaveNeonConfig(ctx context.Context, partial models.Document) (models.NeonDocument, error)

	// SaveDianaConfig posts a partial Diana document. The backend merges it
	// shallowly into the stored document and returns the result.
	SaveDianaConfig(ctx context.Context, partial models.Document) (models.DianaDocument, error)

	// FetchRaw reads the document behind a raw editor target, bypassing any
	// HTTP cache.
	FetchRaw(ctx context.Context, target models.RawTarget) (models.Document, error)

	// SaveRaw replaces the document behind a raw editor target.
	SaveRaw(ctx context.Context, target models.RawTarget, doc models.Document) (models.Document, error)
}
