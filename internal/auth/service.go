// Package auth owns the signed-in state for a single run of the client:
// signing in, signing up, restoring a persisted session, and signing out.
package auth

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/golasco/golasco/internal/api"
	"github.com/golasco/golasco/internal/domain"
	"github.com/golasco/golasco/internal/errors"
	"github.com/golasco/golasco/internal/log"
	"github.com/golasco/golasco/internal/session"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterProfile is the user-supplied profile for a new account.
type RegisterProfile struct {
	FullName string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=customer agent franchise_owner"`
	Phone    string `validate:"omitempty,e164"`
}

// Service coordinates the backend auth endpoints with the local session
// store. All methods are safe for concurrent use; the current session is
// only ever replaced wholesale.
type Service struct {
	client *api.Client
	store  *session.Store
	logger *log.Logger

	mu      sync.RWMutex
	current session.Session
}

// NewService creates an auth service backed by the given client and store.
func NewService(client *api.Client, store *session.Store) *Service {
	return &Service{
		client: client,
		store:  store,
		logger: log.DefaultLogger(),
	}
}

// Hydrate restores a previously persisted session, if any. A missing or
// unreadable session is not an error; the service simply starts signed out.
func (s *Service) Hydrate() {
	sess := s.store.Hydrate()

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if sess.Active() {
		s.client.SetToken(sess.Token)
		s.logger.Debug("session restored", "role", sess.Identity.Role)
	}
}

// Login exchanges credentials for a session. On failure the prior session,
// in memory and on disk, is left untouched.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	resp, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, errors.NewInvalidCredentialsError(api.DetailOf(err))
	}

	return s.establish(*resp)
}

// Register creates an account and signs it in. Profile problems are caught
// locally before any request is made.
func (s *Service) Register(ctx context.Context, profile RegisterProfile) (*domain.Identity, error) {
	if err := validate.Struct(profile); err != nil {
		return nil, errors.NewRegistrationFailedError(err.Error(), err)
	}

	resp, err := s.client.Register(ctx, api.RegisterRequest{
		FullName: profile.FullName,
		Email:    profile.Email,
		Password: profile.Password,
		Role:     profile.Role,
		Phone:    profile.Phone,
	})
	if err != nil {
		return nil, errors.NewRegistrationFailedError(api.DetailOf(err), err)
	}

	return s.establish(*resp)
}

// establish replaces the current session with the auth response, persists
// it, and arms the client token. Token and identity always move together.
func (s *Service) establish(resp api.AuthResponse) (*domain.Identity, error) {
	sess := session.Session{Token: resp.AccessToken, Identity: resp.User}
	if !sess.Active() {
		return nil, errors.NewInvalidCredentialsError("incomplete auth response")
	}

	if err := s.store.Persist(sess); err != nil {
		return nil, errors.NewSessionPersistError(err)
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.client.SetToken(sess.Token)
	s.logger.Info("signed in", "role", sess.Identity.Role)

	return sess.Identity, nil
}

// Logout discards the session in memory and on disk. It never fails and is
// safe to call when already signed out.
func (s *Service) Logout() {
	s.mu.Lock()
	s.current = session.Session{}
	s.mu.Unlock()

	s.client.ClearToken()
	if err := s.store.Clear(); err != nil {
		s.logger.Warn("failed to remove persisted session", "error", err)
	}
}

// Current returns a snapshot of the session as of this call.
func (s *Service) Current() session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
