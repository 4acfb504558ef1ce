package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/promptstash/promptstash-go/internal/crypto"
	"github.com/promptstash/promptstash-go/internal/model"
	"github.com/promptstash/promptstash-go/internal/repository"
)

// UserService handles profile reads and updates.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetProfile returns the caller's profile.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return userToResponse(user), nil
}

// UpdateProfile applies the supplied fields and leaves the rest untouched.
// An email change checks uniqueness; a password change requires the current
// password to verify.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return model.UserResponse{}, validationError("full name is required")
		}
		if utf8.RuneCountInString(name) > maxFullNameLen {
			return model.UserResponse{}, validationError("full name cannot exceed 100 characters")
		}
		user.FullName = name
	}

	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !validEmail(email) {
			return model.UserResponse{}, validationError("please enter a valid email")
		}
		user.Email = email
	}

	if req.NewPassword != nil {
		if req.Password == nil {
			return model.UserResponse{}, validationError("current password is required to set a new password")
		}
		if len(*req.NewPassword) < minPasswordLen {
			return model.UserResponse{}, validationError("password must be at least 6 characters")
		}

		match, err := crypto.VerifyPassword(*req.Password, user.AuthHash)
		if err != nil {
			return model.UserResponse{}, err
		}
		if !match {
			return model.UserResponse{}, ErrWrongPassword
		}

		hash, err := crypto.HashPassword(*req.NewPassword)
		if err != nil {
			return model.UserResponse{}, err
		}
		user.AuthHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return userToResponse(user), nil
}
