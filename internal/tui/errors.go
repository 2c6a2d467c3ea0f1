// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/vault-notes/internal/service"
	"github.com/MKhiriev/vault-notes/internal/validators"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// humanizeError turns service errors into messages for the status line.
// Errors that carry their own details (file size, not-an-image) keep them.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongCredentials):
		return "Неверный e-mail или пароль"
	case errors.Is(err, service.ErrAccountExists):
		return "Аккаунт с таким e-mail уже существует"
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrSessionExpired):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, service.ErrPermissionDenied):
		return "Недостаточно прав"
	case errors.Is(err, service.ErrNoteNotFound):
		return "Заметка не найдена"
	case errors.Is(err, service.ErrNoteNotSaved):
		return "Сначала сохраните заметку"
	case errors.Is(err, service.ErrEmptyRecipient):
		return "Укажите получателя"
	case errors.Is(err, service.ErrInvalidPermission):
		return "Неизвестный уровень доступа"
	case errors.Is(err, validators.ErrInvalidEmail):
		return "Некорректный e-mail"
	case errors.Is(err, validators.ErrEmptyName):
		return "Имя обязательно"
	default:
		return humanizeServerUnavailableError(err)
	}
}
