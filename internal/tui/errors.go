// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-lab-manager/internal/service"
)

var ErrUserQuit = errors.New("вышел из программы")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var appErr *service.ApplicationError
	switch {
	case errors.As(err, &appErr):
		return "Сервер вернул ошибку: " + appErr.Message
	case errors.Is(err, service.ErrAccessDenied):
		return "Нет доступа к списку конфигураций"
	case errors.Is(err, service.ErrEndpointNotFound):
		return "Адрес списка конфигураций не найден на сервере"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		errors.Is(err, service.ErrBackendUnavailable) {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
