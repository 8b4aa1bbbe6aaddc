package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-lab-manager/internal/logger"
	"github.com/MKhiriev/go-lab-manager/internal/service"
	"github.com/MKhiriev/go-lab-manager/models"
)

// App is the client runtime: it runs the picker and prints the selection.
type App struct {
	services *service.ClientServices
	ui       Picker
	out      io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp creates a client [App].
func NewApp(services *service.ClientServices, ui Picker, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client app: services and picker are required")
	}

	return &App{
		services: services,
		ui:       ui,
		out:      os.Stdout,
		logger:   log.WithComponent("client"),
	}, nil
}

// Run implements [Client].
func (a *App) Run() error {
	ctx := context.Background()

	selection, err := a.ui.Pick(ctx)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("config", selection.Config.Name).
		Str("editor", selection.Editor).
		Time("list_loaded_at", a.services.ConfigService.LoadedAt()).
		Msg("printing selection")

	return printSelection(a.out, selection)
}

func printSelection(w io.Writer, s models.Selection) error {
	_, err := fmt.Fprintf(w, "name: %s\nserver: %s\nport: %s\neditor: %s\n",
		s.Config.Name, s.Config.Server, s.Config.Port, s.Editor)
	return err
}
