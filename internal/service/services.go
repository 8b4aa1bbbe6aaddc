package service

import (
	"github.com/MKhiriev/go-lab-manager/internal/adapter"
	"github.com/MKhiriev/go-lab-manager/internal/logger"
)

// ClientServices groups the services used by the client runtime.
type ClientServices struct {
	ConfigService ConfigService
}

// NewClientServices wires the client services on top of serverAdapter.
func NewClientServices(serverAdapter adapter.ServerAdapter, log *logger.Logger) (*ClientServices, error) {
	return &ClientServices{
		ConfigService: NewConfigService(serverAdapter, log),
	}, nil
}
