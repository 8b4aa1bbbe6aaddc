// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lab-manager/internal/config"
	"github.com/MKhiriev/go-lab-manager/internal/logger"
	"github.com/MKhiriev/go-lab-manager/internal/service"
	"github.com/MKhiriev/go-lab-manager/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the interactive configuration picker.
type TUI struct {
	services        *service.ClientServices
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo

	logger *logger.Logger
}

// New creates a [TUI] over services. A positive workers.RefreshInterval
// makes the picker reload the config list periodically.
func New(services *service.ClientServices, workers config.ClientWorkers, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		services:        services,
		refreshInterval: workers.RefreshInterval,
		buildInfo:       buildInfo,
		logger:          log.WithComponent("tui"),
	}, nil
}

// Pick shows the config list and blocks until the user selects a
// configuration or quits. Quitting returns [ErrUserQuit].
func (t *TUI) Pick(ctx context.Context) (models.Selection, error) {
	model := newPickerModel(ctx, t.services.ConfigService, t.refreshInterval, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Selection{}, err
	}

	result, ok := finalModel.(pickerModel)
	if !ok {
		return models.Selection{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.selection == nil {
		t.logger.Debug().Msg("picker closed without a selection")
		return models.Selection{}, ErrUserQuit
	}

	t.logger.Info().
		Str("config", result.selection.Config.Name).
		Str("address", result.selection.Config.Address()).
		Msg("config selected")

	return *result.selection, nil
}
