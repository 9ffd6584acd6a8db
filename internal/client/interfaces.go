// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// Run blocks until the user leaves. startupErr, when non-nil, is shown
	// to the user as a warning.
	Run(ctx context.Context, startupErr error) error
}
