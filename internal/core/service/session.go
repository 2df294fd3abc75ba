package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

// Session is the single source of truth for who is logged in. It is the only
// component that mutates the in-memory identity and the durable token key
// through the login/logout paths; the gateway's forced-expiry path clears
// storage behind its back without updating these fields.
//
// Invariant: token and user are both set or both empty, except after a
// restart, where the token is restored from durable storage and the user
// identity is not (CurrentUser re-hydrates it on demand).
type Session struct {
	users   ports.UserAPI
	durable ports.KeyValue
	scoped  ports.KeyValue
	log     zerolog.Logger
	now     func() time.Time

	mu    sync.RWMutex
	user  *domain.User
	token string
}

// NewSession builds a Session and restores the token from durable storage.
// A restored token whose exp claim already passed is discarded up front
// instead of guaranteeing a 401 round-trip on the first call.
func NewSession(users ports.UserAPI, durable, scoped ports.KeyValue, log zerolog.Logger) *Session {
	s := &Session{
		users:   users,
		durable: durable,
		scoped:  scoped,
		log:     log,
		now:     time.Now,
	}

	token, err := durable.Get(ports.TokenKey)
	if err != nil || token == "" {
		return s
	}
	if tokenExpired(token, s.now()) {
		s.log.Debug().Msg("discarding expired token from durable storage")
		_ = durable.Remove(ports.TokenKey)
		return s
	}
	s.token = token
	return s
}

// Login authenticates against the user service. On success the token, user
// identity, and login timestamp are set together: the token goes to durable
// storage, the timestamp to the session-scoped tier.
func (s *Session) Login(ctx context.Context, email, password string) (*domain.User, error) {
	result, err := s.users.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token = result.AccessToken
	s.user = result.User
	s.mu.Unlock()

	if err := s.durable.Set(ports.TokenKey, result.AccessToken); err != nil {
		s.log.Error().Err(err).Msg("failed to persist token")
	}
	millis := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.scoped.Set(ports.LoginTimeKey, millis); err != nil {
		s.log.Error().Err(err).Msg("failed to persist login time")
	}

	s.log.Info().Str("user_id", result.User.ID).Msg("logged in")
	return result.User, nil
}

// Register creates an account and then performs the full login flow with the
// same credentials; registration alone does not establish a session. When
// registration succeeds but the login fails, the login error is returned and
// the account remains on the server.
func (s *Session) Register(ctx context.Context, email, fullName, password string) (*domain.User, error) {
	if _, err := s.users.Register(ctx, email, fullName, password); err != nil {
		return nil, err
	}
	return s.Login(ctx, email, password)
}

// Logout clears the identity, the token, and both storage entries. Safe to
// call when already logged out.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	_ = s.durable.Remove(ports.TokenKey)
	_ = s.scoped.Remove(ports.LoginTimeKey)
}

// IsAuthenticated reports whether both token and user identity are present.
// Derived on read, never stored.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// CurrentUser returns the in-memory identity, or nil when anonymous.
func (s *Session) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the in-memory token, or empty when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// tokenExpired reports whether the token carries an exp claim in the past.
// The signature is not verified client-side; malformed or claimless tokens
// are left for the server to reject.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
