// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lab-manager/internal/registry"
	"github.com/MKhiriev/go-lab-manager/models"
)

// ConfigService defines the client-side contract for loading the Lab Manager
// configuration list from the backend and querying it.
//
// The service owns the current [registry.ConfigRegistry]. Every successful
// Refresh replaces it as a whole; a failed Refresh keeps the previous one.
type ConfigService interface {
	// Refresh fetches the config list through the server adapter and parses
	// it into a new registry. Returns an [*ApplicationError] when the
	// response carries an <error>, an error wrapping [registry.ErrParse] or
	// [registry.ErrResponseNotFound] for unusable XML, and a wrapped
	// transport error otherwise.
	Refresh(ctx context.Context) error

	// Configs returns all configurations in name order.
	Configs() []models.ConfigInfo

	// Config returns the named configuration, or an error wrapping
	// [registry.ErrConfigNotFound].
	Config(name string) (models.ConfigInfo, error)

	// Select resolves name into a [models.Selection] carrying the
	// configuration and its editor definition.
	Select(name string) (models.Selection, error)

	// EditorDefinition returns the editor label for name.
	EditorDefinition(name string) string

	// IsEmpty reports whether the current registry holds no configurations.
	IsEmpty() bool

	// PopulateListControl appends every configuration name, in sorted
	// order, to target.
	PopulateListControl(target registry.ListControl)

	// LoadedAt returns the time of the last successful Refresh, or the zero
	// time if none succeeded yet.
	LoadedAt() time.Time
}
