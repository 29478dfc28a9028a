// Package session holds the authenticated user and bearer token, mirrored
// to persistent storage under the "user" and "token" keys. It only ever
// stores what the backend issued.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/domain"
	"github.com/royalbee/storefront/internal/storage"
)

type Session struct {
	mu     sync.RWMutex
	user   *domain.User
	token  string
	kv     storage.KV
	logger *zap.Logger
}

// New restores any persisted credentials. Missing keys mean logged-out, not
// an error.
func New(ctx context.Context, kv storage.KV, logger *zap.Logger) (*Session, error) {
	s := &Session{kv: kv, logger: logger}

	if raw, err := kv.Get(ctx, storage.KeyUser); err == nil {
		var user domain.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("failed to decode persisted user: %w", err)
		}
		s.user = &user
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, fmt.Errorf("failed to restore user: %w", err)
	}

	if raw, err := kv.Get(ctx, storage.KeyToken); err == nil {
		if err := json.Unmarshal(raw, &s.token); err != nil {
			return nil, fmt.Errorf("failed to decode persisted token: %w", err)
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, fmt.Errorf("failed to restore token: %w", err)
	}

	return s, nil
}

// CurrentUser returns the cached user, if any.
func (s *Session) CurrentUser() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// Token returns the bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// SetCredentials stores a backend-issued user and token pair.
func (s *Session) SetCredentials(ctx context.Context, user domain.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.token = token

	if err := s.persistUserLocked(ctx); err != nil {
		return err
	}
	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyToken, raw); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// ReplaceUser swaps the cached profile for a freshly fetched one. The token
// is untouched.
func (s *Session) ReplaceUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	return s.persistUserLocked(ctx)
}

// ClearCredentials logs out: drops both keys from memory and storage.
func (s *Session) ClearCredentials(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""

	if err := s.kv.Delete(ctx, storage.KeyUser); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}
	if err := s.kv.Delete(ctx, storage.KeyToken); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

func (s *Session) persistUserLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUser, raw); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}
