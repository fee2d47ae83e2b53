// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the terminal dashboard.
type UI interface {
	// LoginFlow blocks until the backend accepted a login. It returns
	// tui.ErrUserQuit when the operator quits instead.
	LoginFlow(ctx context.Context) (username string, err error)

	// MainLoop runs the dashboard. logout is true when the operator logged
	// out or the session expired.
	MainLoop(ctx context.Context) (logout bool, err error)
}
