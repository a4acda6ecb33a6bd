// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the board's terminal client. The only
// implementation wraps the interactive TUI.
type Client interface {
	// Run starts the client and blocks until the user exits or the UI fails.
	Run() error
}
