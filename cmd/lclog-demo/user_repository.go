package main

import (
	"context"

	"github.com/Kargones/lclog/pkg/lifecycle"
)

type userRepository struct {
	log   *lifecycle.Logger
	users map[string]bool
}

func newUserRepository(ctx context.Context, log *lifecycle.Logger) *userRepository {
	log.ConstructContext(ctx, "in-memory", lifecycle.WithType("map"))
	return &userRepository{log: log, users: map[string]bool{"alice": true}}
}

func (r *userRepository) Exists(name string) bool {
	return r.users[name]
}

func (r *userRepository) Close(ctx context.Context) {
	r.log.DestructContext(ctx, "", lifecycle.WithType("map"))
}
