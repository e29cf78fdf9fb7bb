// Package service contains the application's business logic, sitting between
// the HTTP handlers and the data stores.
package service

import (
	"context"
	"strings"

	"connecthub/internal/models"
	"connecthub/internal/store"
	"connecthub/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users store.UserStore
}

type RegisterInput struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Interests []string `json:"interests"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileInput struct {
	UserID    uint
	Username  string
	Bio       string
	Avatar    string
	Interests []string
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Register validates the input, hashes the password and creates the user.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" || email == "" || in.Password == "" {
		return nil, models.NewValidationError("Username, email, and password are required")
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateInterests(in.Interests); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	interests := make(models.StringList, 0, len(in.Interests))
	for _, raw := range in.Interests {
		interests = append(interests, strings.TrimSpace(raw))
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		Interests: interests,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the matching user. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.Interests != nil {
		if err := validation.ValidateInterests(in.Interests); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		interests := make(models.StringList, 0, len(in.Interests))
		for _, raw := range in.Interests {
			interests = append(interests, strings.TrimSpace(raw))
		}
		user.Interests = interests
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SearchUsers matches usernames case-insensitively against the query
// substring. An empty query is rejected rather than listing everyone.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.users.Search(ctx, query, store.SearchLimit)
}
