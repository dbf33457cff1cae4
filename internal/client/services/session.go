// Package services contains the application services of the MarketPlac
// client: session, catalog, wishlist and checkout. Each service holds the
// remote API client plus whatever local state it owns; failures in one
// service never touch the state of another.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/marketplac/internal/client/api"
	"github.com/dmitrijs2005/marketplac/internal/client/models"
	"github.com/dmitrijs2005/marketplac/internal/client/repositories/metadata"
)

// metadataKeyToken is the single durable key: written on login, removed on
// logout, read once at startup.
const metadataKeyToken = "token"

// SessionService owns the credential token and the identity of the current
// session. It is the only writer of the token; every other component reads
// it through Token at call time.
//
// Contract:
//   - Restore: read a previously persisted credential; absence is not an error.
//   - Login: obtain a credential, persist it durably, then set the identity.
//   - Register: create an account without authenticating.
//   - Logout: remove the persisted credential and clear session state.
type SessionService interface {
	Restore(ctx context.Context) (bool, error)
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, name, email string, password []byte) error
	Logout(ctx context.Context) error
	Token() string
	Identity() *models.User
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type sessionService struct {
	client   api.Client
	metadata metadata.Repository

	mu       sync.RWMutex
	token    string
	identity *models.User
}

// NewSessionService constructs a SessionService bound to the given API
// client and metadata repository.
func NewSessionService(client api.Client, metadata metadata.Repository) SessionService {
	return &sessionService{client: client, metadata: metadata}
}

// Restore reads a previously persisted credential. It reports whether one
// was found so the caller can trigger wishlist hydration. A restored session
// is authenticated but anonymous: the identity arrives only with the next
// login response.
func (s *sessionService) Restore(ctx context.Context) (bool, error) {
	value, err := s.metadata.Get(ctx, metadataKeyToken)
	if err != nil {
		return false, fmt.Errorf("restore credential: %w", err)
	}
	if len(value) == 0 {
		return false, nil
	}

	s.mu.Lock()
	s.token = string(value)
	s.mu.Unlock()
	return true, nil
}

// Login issues a credential request. On success the token is persisted
// durably before the identity is set and before Login returns, so any
// authenticated call issued afterwards observes the new credential. On
// failure prior session state is left untouched.
func (s *sessionService) Login(ctx context.Context, email string, password []byte) error {
	token, user, err := s.client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.metadata.Set(ctx, metadataKeyToken, []byte(token)); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.identity = user
	s.mu.Unlock()
	return nil
}

// Register creates an account on the remote source. Registration and login
// are decoupled operations: a successful registration never authenticates.
func (s *sessionService) Register(ctx context.Context, name, email string, password []byte) error {
	if err := s.client.Register(ctx, name, email, string(password)); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout removes the durable credential and clears the in-memory session
// state. State is cleared even if the durable delete fails, so a broken
// local database can not keep a session alive.
func (s *sessionService) Logout(ctx context.Context) error {
	err := s.metadata.Delete(ctx, metadataKeyToken)

	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// Token implements api.TokenSource. An empty string means unauthenticated.
func (s *sessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *sessionService) Identity() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	u := *s.identity
	return &u
}

// Ping proxies a liveness check to the underlying client.
func (s *sessionService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (s *sessionService) Close(ctx context.Context) error {
	return s.client.Close()
}
