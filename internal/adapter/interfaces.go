// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Lab Manager backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Lab Manager
// backend.
type ServerAdapter interface {
	// FetchConfigs requests the config list endpoint and returns the raw XML
	// response body. The body is returned as is; interpreting it (including
	// any embedded <error>) is left to the caller. Returns an error if the
	// request fails or the backend responds with a non-2xx status.
	FetchConfigs(ctx context.Context) (string, error)
}
