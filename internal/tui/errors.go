// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
)

var ErrUserQuit = errors.New("user quit")

// isSessionExpired tells the dashboard to return to the login page.
func isSessionExpired(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}

func humanizeError(err error) string {
	if isSessionExpired(err) {
		return app.MsgSessionExpired
	}
	return app.UserMessage(err)
}
