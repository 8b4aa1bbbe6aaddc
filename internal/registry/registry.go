// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"

	"github.com/MKhiriev/go-lab-manager/models"
	"github.com/google/btree"
)

// EditorDefinition is the editor label reported for every configuration.
const EditorDefinition = "EC-LabManager"

const btreeDegree = 8

// ListControl is the display collaborator filled by
// [ConfigRegistry.PopulateListControl]. Only appending is required.
type ListControl interface {
	AddItem(item string)
}

// ConfigEntry is the connection info stored under a configuration name.
// It is immutable once constructed.
type ConfigEntry struct {
	server string
	port   string
}

// NewConfigEntry constructs a [ConfigEntry].
func NewConfigEntry(server, port string) ConfigEntry {
	return ConfigEntry{server: server, port: port}
}

// Server returns the configured host.
func (e ConfigEntry) Server() string {
	return e.server
}

// Port returns the configured port as sent by the backend.
func (e ConfigEntry) Port() string {
	return e.port
}

type configItem struct {
	name  string
	entry ConfigEntry
}

func lessByName(a, b configItem) bool {
	return a.name < b.name
}

// ConfigRegistry maps configuration names to [ConfigEntry] values, ordered
// by name. Adding a name that already exists replaces the previous entry.
type ConfigRegistry struct {
	configs *btree.BTreeG[configItem]
}

// New returns an empty [ConfigRegistry].
func New() *ConfigRegistry {
	return &ConfigRegistry{configs: btree.NewG(btreeDegree, lessByName)}
}

// AddConfig inserts or replaces the entry stored under name. server and
// port are accepted as opaque strings and may be empty.
func (r *ConfigRegistry) AddConfig(name, server, port string) {
	r.configs.ReplaceOrInsert(configItem{name: name, entry: NewConfigEntry(server, port)})
}

// Entry returns the entry stored under name.
func (r *ConfigRegistry) Entry(name string) (ConfigEntry, bool) {
	item, ok := r.configs.Get(configItem{name: name})
	return item.entry, ok
}

// Config returns the configuration stored under name as a [models.ConfigInfo].
func (r *ConfigRegistry) Config(name string) (models.ConfigInfo, bool) {
	entry, ok := r.Entry(name)
	if !ok {
		return models.ConfigInfo{}, false
	}
	return models.ConfigInfo{Name: name, Server: entry.server, Port: entry.port}, true
}

// Configs returns every configuration in name order.
func (r *ConfigRegistry) Configs() []models.ConfigInfo {
	out := make([]models.ConfigInfo, 0, r.configs.Len())
	r.configs.Ascend(func(item configItem) bool {
		out = append(out, models.ConfigInfo{Name: item.name, Server: item.entry.server, Port: item.entry.port})
		return true
	})
	return out
}

// ConfigNames returns all configuration names in sorted order. The slice is
// a copy; changing it does not affect the registry.
func (r *ConfigRegistry) ConfigNames() []string {
	names := make([]string, 0, r.configs.Len())
	r.configs.Ascend(func(item configItem) bool {
		names = append(names, item.name)
		return true
	})
	return names
}

// ConfigServer returns the server of the named configuration, or an error
// wrapping [ErrConfigNotFound].
func (r *ConfigRegistry) ConfigServer(name string) (string, error) {
	entry, ok := r.Entry(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}
	return entry.server, nil
}

// ConfigPort returns the port of the named configuration, or an error
// wrapping [ErrConfigNotFound].
func (r *ConfigRegistry) ConfigPort(name string) (string, error) {
	entry, ok := r.Entry(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}
	return entry.port, nil
}

// EditorDefinition always returns [EditorDefinition]; name is ignored.
func (r *ConfigRegistry) EditorDefinition(string) string {
	return EditorDefinition
}

// SetEditorDefinition does nothing. Editor definitions are fixed.
func (r *ConfigRegistry) SetEditorDefinition(string, string) {}

// IsEmpty reports whether the registry holds no configurations.
func (r *ConfigRegistry) IsEmpty() bool {
	return r.configs.Len() == 0
}

// Len returns the number of configurations.
func (r *ConfigRegistry) Len() int {
	return r.configs.Len()
}

// PopulateListControl appends every configuration name to target in sorted
// order.
func (r *ConfigRegistry) PopulateListControl(target ListControl) {
	r.configs.Ascend(func(item configItem) bool {
		target.AddItem(item.name)
		return true
	})
}
