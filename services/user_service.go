package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quizmaster/models"
)

// ErrInvalidCredentials is returned for a failed email/password login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles login-time profile merging and profile edits.
type UserService struct {
	profiles ProfileStore
}

func NewUserService(profiles ProfileStore) *UserService {
	return &UserService{profiles: profiles}
}

// Login merges the identity-provider record with any previously
// persisted profile for that email, so achievements and the streak
// record survive across sessions. A storage failure degrades to a
// fresh in-memory profile rather than blocking the login.
func (s *UserService) Login(ctx context.Context, incoming models.User) (*models.User, error) {
	existing, err := s.profiles.GetProfile(ctx, incoming.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("Profile lookup failed for %s, continuing with a fresh profile: %v", incoming.Email, err)
	}

	user := incoming
	if user.UnlockedAchievements == nil {
		user.UnlockedAchievements = []string{}
	}
	user.LongestStreakEver = 0
	user.CreatedAt = time.Now()

	if err := s.profiles.SaveProfile(ctx, &user); err != nil {
		log.Printf("Failed to persist new profile for %s: %v", user.Email, err)
	}
	return &user, nil
}

// UpdateProfile applies a profile edit (name, picture, avatar flag)
// without touching achievement or streak progress.
func (s *UserService) UpdateProfile(ctx context.Context, email string, name, picture string, hasSelectedAvatar *bool) (*models.User, error) {
	user, err := s.profiles.GetProfile(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if name != "" {
		user.Name = name
	}
	if picture != "" {
		user.Picture = picture
	}
	if hasSelectedAvatar != nil {
		user.HasSelectedAvatar = *hasSelectedAvatar
	}

	if err := s.profiles.SaveProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return user, nil
}

// Get returns the persisted profile for the email.
func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	return s.profiles.GetProfile(ctx, email)
}
