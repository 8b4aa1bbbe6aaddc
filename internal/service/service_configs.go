package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-lab-manager/internal/adapter"
	"github.com/MKhiriev/go-lab-manager/internal/logger"
	"github.com/MKhiriev/go-lab-manager/internal/registry"
	"github.com/MKhiriev/go-lab-manager/models"
)

type configService struct {
	serverAdapter adapter.ServerAdapter

	mu       sync.RWMutex
	current  *registry.ConfigRegistry
	loadedAt time.Time

	logger *logger.Logger
}

// NewConfigService creates a [ConfigService] backed by serverAdapter. The
// service starts with an empty registry; call Refresh to load it.
func NewConfigService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ConfigService {
	return &configService{
		serverAdapter: serverAdapter,
		current:       registry.New(),
		logger:        log.WithComponent("config_service"),
	}
}

// Refresh implements [ConfigService].
func (s *configService) Refresh(ctx context.Context) error {
	text, err := s.serverAdapter.FetchConfigs(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error fetching configs")
		return fmt.Errorf("fetch configs: %w", mapAdapterError(err))
	}

	next := registry.New()
	appErr, err := next.ParseResponse(text)
	if err != nil {
		s.logger.Err(err).Int("bytes", len(text)).Msg("error parsing configs response")
		return fmt.Errorf("parse configs response: %w", err)
	}
	if appErr != "" {
		s.logger.Warn().Str("error", appErr).Msg("backend returned an application error")
		return &ApplicationError{Message: appErr}
	}

	s.mu.Lock()
	s.current = next
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info().Int("configs", next.Len()).Msg("config list refreshed")
	return nil
}

func (s *configService) snapshot() *registry.ConfigRegistry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Configs implements [ConfigService].
func (s *configService) Configs() []models.ConfigInfo {
	return s.snapshot().Configs()
}

// Config implements [ConfigService].
func (s *configService) Config(name string) (models.ConfigInfo, error) {
	cfg, ok := s.snapshot().Config(name)
	if !ok {
		return models.ConfigInfo{}, fmt.Errorf("%w: %q", registry.ErrConfigNotFound, name)
	}
	return cfg, nil
}

// Select implements [ConfigService].
func (s *configService) Select(name string) (models.Selection, error) {
	reg := s.snapshot()

	cfg, ok := reg.Config(name)
	if !ok {
		return models.Selection{}, fmt.Errorf("%w: %q", registry.ErrConfigNotFound, name)
	}

	return models.Selection{Config: cfg, Editor: reg.EditorDefinition(name)}, nil
}

// EditorDefinition implements [ConfigService].
func (s *configService) EditorDefinition(name string) string {
	return s.snapshot().EditorDefinition(name)
}

// IsEmpty implements [ConfigService].
func (s *configService) IsEmpty() bool {
	return s.snapshot().IsEmpty()
}

// PopulateListControl implements [ConfigService].
func (s *configService) PopulateListControl(target registry.ListControl) {
	s.snapshot().PopulateListControl(target)
}

// LoadedAt implements [ConfigService].
func (s *configService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
