package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kargones/lclog/internal/pkg/apperrors"
	"github.com/Kargones/lclog/pkg/lifecycle"
)

var errEmptyUser = errors.New("empty user name")

type sessionManager struct {
	log  *lifecycle.Logger
	repo *userRepository
}

func newSessionManager(ctx context.Context, log *lifecycle.Logger, repo *userRepository) *sessionManager {
	log.ConstructContext(ctx, "")
	return &sessionManager{log: log, repo: repo}
}

// Login ищет пользователя в репозитории. Ошибка описывается через AppError,
// поэтому в строке лога выводится только человекочитаемая часть.
func (m *sessionManager) Login(ctx context.Context, name string) error {
	if name == "" {
		return apperrors.NewAppError("SESSION.LOGIN_FAILED", "не указано имя пользователя", errEmptyUser)
	}
	if !m.repo.Exists(name) {
		return fmt.Errorf("user %q not found", name)
	}
	m.log.LogContext(ctx, "вход выполнен: "+name)
	return nil
}

func (m *sessionManager) Close(ctx context.Context) {
	m.log.DestructContext(ctx, "")
}
