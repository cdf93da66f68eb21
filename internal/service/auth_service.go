package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"hostelhub/internal/config"
	"hostelhub/internal/ids"
	"hostelhub/internal/models"
	"hostelhub/internal/repository"
	"hostelhub/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

type AuthService struct {
	users    *repository.UserRepository
	bookings *repository.BookingRepository
	cache    *redis.Client
	mailer   Mailer
	cfg      *config.AppConfig
	log      zerolog.Logger
}

type Mailer interface {
	SendResetLink(ctx context.Context, email string, link string) error
}

func NewAuthService(
	users *repository.UserRepository,
	bookings *repository.BookingRepository,
	cache *redis.Client,
	mailer Mailer,
	cfg *config.AppConfig,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		bookings: bookings,
		cache:    cache,
		mailer:   mailer,
		cfg:      cfg,
		log:      log,
	}
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Role        models.UserRole
}

type AuthResult struct {
	Token         string
	User          models.User
	ActiveBooking *models.Booking
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || input.Password == "" {
		return AuthResult{}, fmt.Errorf("email and password required")
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	role := input.Role
	if role == "" {
		role = models.UserRoleResident
	}

	user := models.User{
		ID:             ids.New(),
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   passwordHash,
		PhoneNumber:    input.PhoneNumber,
		Role:           role,
		ResidentStatus: models.ResidentStatusInactive,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	return s.issueToken(user)
}

type LoginInput struct {
	Email    string
	Password string
	Role     models.UserRole
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	// Role is part of the credential: a resident login cannot yield a
	// staff or admin session.
	user, err := s.users.FindByEmailAndRole(ctx, input.Email, input.Role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return AuthResult{}, ErrInvalidCredentials
	}

	result, err := s.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	if user.Role == models.UserRoleResident {
		bookings, err := s.bookings.ListActiveByResident(ctx, user.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("active booking lookup failed")
		} else if len(bookings) > 0 {
			result.ActiveBooking = &bookings[0]
		}
	}

	return result, nil
}

func (s *AuthService) issueToken(user models.User) (AuthResult, error) {
	token, err := security.GenerateAccessToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		string(user.Role),
		string(user.ResidentStatus),
		s.cfg.Security.JWTAccessTTL,
	)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}

func resetKey(userID string) string {
	return "reset:" + userID
}

// ForgotPassword issues a single-use reset token. The response is identical
// whether or not the email exists, so the endpoint cannot be used to probe
// registered addresses.
func (s *AuthService) ForgotPassword(ctx context.Context, email string, role models.UserRole) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, hash, err := security.GenerateResetToken(32)
	if err != nil {
		return err
	}

	if err := s.cache.Set(ctx, resetKey(user.ID), hash, s.cfg.Security.ResetTokenTTL).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link := fmt.Sprintf("/reset-password/%s/%s", user.ID, token)
	if err := s.mailer.SendResetLink(ctx, user.Email, link); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("reset mail failed")
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, userID string, token string, newPassword string) error {
	stored, err := s.cache.Get(ctx, resetKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrInvalidResetToken
		}
		return err
	}

	if string(security.HashResetToken(token)) != string(stored) {
		return ErrInvalidResetToken
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	// Single use: a second reset needs a fresh token.
	if err := s.cache.Del(ctx, resetKey(userID)).Err(); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("reset token cleanup failed")
	}
	return nil
}
