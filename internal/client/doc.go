// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal dashboard runtime.
//
// It points the gateway at the stored backend, restores a remembered login
// or runs the login flow, and then runs the dashboard until the operator
// quits. Logging out returns to the login flow.
package client
