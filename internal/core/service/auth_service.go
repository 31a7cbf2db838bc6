package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/todo-api/internal/core/domain"
	"github.com/taskdeck/todo-api/internal/core/ports"
)

// AuthService implements registration and credential exchange.
type AuthService struct {
	repo  ports.UserRepository
	codec *TokenCodec
	log   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, log: log}
}

// Register hashes the password and stores a new active account.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		IsActive:     true,
		Role:         in.Role,
		PhoneNumber:  in.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Authenticate looks up the account by username and verifies the password.
// An unknown username is domain.ErrUserNotFound; a wrong password is
// domain.ErrInvalidCredentials. Callers facing the network are expected to
// collapse both into one response.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the credentials and issues a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Encode(user.Username, user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("token issued")
	return token, user, nil
}
