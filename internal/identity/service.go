package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"cosmolink/internal/common"
	"cosmolink/internal/dbmysql"
)

var (
	ErrNoSession          = errors.New("no active session")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// Session is the authenticated viewing identity. UserID is the stable key
// for profile lookups.
type Session struct {
	UserID    int64
	Email     string
	Token     string
	ExpiresAt time.Time
}

// ProfileStore is the slice of the profile repository the identity service
// needs for credential storage.
type ProfileStore interface {
	Create(ctx context.Context, p *dbmysql.Profile) error
	FetchByEmail(ctx context.Context, email string) (*dbmysql.Profile, error)
}

// Service issues and validates session tokens. Tokens are stateless JWTs;
// sign-out works by revoking the token id in memory, consistent with the
// session-scoped state model (revocations reset on restart).
type Service struct {
	repo   ProfileStore
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger

	mu      sync.Mutex
	revoked map[string]struct{}
}

func NewService(repo ProfileStore, secret []byte, ttl time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		secret:  secret,
		ttl:     ttl,
		log:     logger.With().Str("component", "identity").Logger(),
		revoked: make(map[string]struct{}),
	}
}

// Register creates a profile row with hashed credentials and signs the new
// user in.
func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) (*Session, error) {
	if err := common.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.repo.FetchByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := common.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p := &dbmysql.Profile{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.log.Info().Int64("user_id", p.UserID).Msg("user registered")
	return s.issueSession(p.UserID, p.Email)
}

// Login verifies credentials against the profile store and issues a session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	p, err := s.repo.FetchByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := common.CheckPassword(password, p.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(p.UserID, p.Email)
}

// GetCurrentSession parses a token and returns the session it carries, or
// ErrNoSession for missing, expired, malformed, or revoked tokens.
func (s *Service) GetCurrentSession(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	claims, err := common.ValidToken(s.secret, token)
	if err != nil {
		return nil, ErrNoSession
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mu.Unlock()
	if revoked {
		return nil, ErrNoSession
	}

	return &Session{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SignOut revokes the token. Unknown or already-invalid tokens are a no-op.
func (s *Service) SignOut(token string) {
	claims, err := common.ValidToken(s.secret, token)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.revoked[claims.ID] = struct{}{}
	s.mu.Unlock()
	s.log.Info().Int64("user_id", claims.UserID).Msg("user signed out")
}

func (s *Service) issueSession(userID int64, email string) (*Session, error) {
	token, err := common.GenerateToken(s.secret, userID, email, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{
		UserID:    userID,
		Email:     email,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}
