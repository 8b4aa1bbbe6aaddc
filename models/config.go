// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net"

// ConfigInfo describes a single named Lab Manager configuration as it is
// passed between the registry, the service layer and the terminal UI.
type ConfigInfo struct {
	// Name is the unique configuration name. It is the ordering key of the
	// registry and the label shown in the picker list.
	Name string `json:"name"`

	// Server is the Lab Manager host the configuration points to.
	// Accepted as an opaque string; may be empty if the backend omitted it.
	Server string `json:"server"`

	// Port is the Lab Manager port, kept as the raw string sent by the
	// backend. No numeric validation is applied.
	Port string `json:"port"`
}

// Address returns the configuration endpoint in "server:port" form. IPv6
// hosts are bracketed ("[::1]:8080").
func (c ConfigInfo) Address() string {
	return net.JoinHostPort(c.Server, c.Port)
}

// Selection is the result of the interactive config picker: the chosen
// configuration and the editor definition label registered for it.
type Selection struct {
	Config ConfigInfo `json:"config"`
	Editor string     `json:"editor"`
}
