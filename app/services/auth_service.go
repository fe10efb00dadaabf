package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/pkg/validate"
)

// PasswordHasher is the credential codec used by AuthService.
type PasswordHasher interface {
	HashPassword(plain string) (string, error)
	CheckPassword(hash, plain string) bool
}

// SignupInput is the signup request body.
type SignupInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"phone"`
	Address  string `json:"address"  validate:"required"`
	Age      int    `json:"age"      validate:"age"`
	Password string `json:"password" validate:"password"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService struct {
	users  repositories.UserRepository
	hasher PasswordHasher
	newID  func() string

	decoyOnce sync.Once
	decoyHash string
}

func NewAuthService(users repositories.UserRepository, hasher PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher, newID: uuid.NewString}
}

// Signup registers a user. Checks run in a fixed order: email uniqueness,
// phone, age, password, then the remaining required fields. The password is
// hashed only after every rule has passed.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Email = strings.TrimSpace(in.Email)

	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("signup: lookup email: %w", err)
	}

	if !validate.Phone(in.Phone) {
		return nil, validate.ErrInvalidPhone
	}
	if !validate.Age(in.Age) {
		return nil, validate.ErrInvalidAge
	}
	if !validate.Password(in.Password) {
		return nil, validate.ErrWeakPassword
	}
	if !validate.PasswordFits(in.Password) {
		return nil, validate.ErrPasswordTooLong
	}
	if msg := validate.First(in); msg != "" {
		return nil, invalid(msg)
	}

	hash, err := s.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user := &models.User{
		ID:       s.newID(),
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  strings.TrimSpace(in.Address),
		Age:      in.Age,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("signup: %w", err)
	}
	return user, nil
}

// Login returns the user when the credentials match. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Same bcrypt cost as a wrong password for a known email.
			s.hasher.CheckPassword(s.decoy(), in.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !s.hasher.CheckPassword(user.Password, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// decoy returns a hash at the configured cost that no client password matches.
func (s *AuthService) decoy() string {
	s.decoyOnce.Do(func() {
		s.decoyHash, _ = s.hasher.HashPassword(uuid.NewString())
	})
	return s.decoyHash
}
