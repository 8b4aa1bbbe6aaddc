// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-lab-manager/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Picker shows the configuration list and returns the user's choice.
// [tui.TUI] is the production implementation.
type Picker interface {
	Pick(ctx context.Context) (models.Selection, error)
}
