// Package service implements account registration, login, and profile logic.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"papergenius_backend/internal/auth/repository"
	"papergenius_backend/internal/auth/transport"
	cartrepo "papergenius_backend/internal/cart/repository"
	"papergenius_backend/platform/apperr"
	"papergenius_backend/platform/config"
	"papergenius_backend/platform/logger"
	"papergenius_backend/platform/phone"
)

// Service provides authentication and account operations.
type Service struct {
	repo   repository.Repository
	cart   cartrepo.Repository
	cfg    config.AuthServiceConfig
	region string
	log    *logger.Logger
}

// New creates a new auth service. region is the default phone region used to
// normalize contact numbers.
func New(repo repository.Repository, cart cartrepo.Repository, cfg config.AuthServiceConfig, region string, log *logger.Logger) *Service {
	return &Service{repo: repo, cart: cart, cfg: cfg, region: region, log: log}
}

// Register creates a new account. The contact number is normalized to E.164
// when possible; the level defaults to a plain student account.
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) (transport.UserResponse, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		s.log.Error("password hashing failed", "error", err)
		return transport.UserResponse{}, apperr.Internal("could not create account")
	}

	level := strings.TrimSpace(req.Level)
	if level == "" || level == repository.LevelAdmin {
		level = "Student"
	}

	user, err := s.repo.CreateUser(ctx, repository.CreateUserParams{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		School:       strings.TrimSpace(req.School),
		Level:        level,
		Number:       phone.NormalizeE164Region(req.Number, s.region),
		Address:      strings.TrimSpace(req.Address),
		Town:         strings.TrimSpace(req.Town),
	})
	if err != nil {
		return transport.UserResponse{}, err
	}

	s.log.AuthEvent("register", user.Email, true, "")
	return toUserResponse(user), nil
}

// Login verifies the credentials and issues a signed access token. Unknown
// email and wrong password produce the same response.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			return transport.LoginResponse{}, apperr.Unauthorized("invalid email or password")
		}
		return transport.LoginResponse{}, err
	}

	if !CheckPassword(user.PasswordHash, req.Password) {
		s.log.AuthEvent("login", user.Email, false, "wrong password")
		return transport.LoginResponse{}, apperr.Unauthorized("invalid email or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.log.Error("token signing failed", "error", err)
		return transport.LoginResponse{}, apperr.Internal("could not sign in")
	}

	s.log.AuthEvent("login", user.Email, true, "")
	return transport.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// GetProfile returns the user's own account.
func (s *Service) GetProfile(ctx context.Context, userID int64) (transport.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return transport.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// GetCustomer returns the checkout contact snapshot for a user.
func (s *Service) GetCustomer(ctx context.Context, userID int64) (Customer, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return Customer{}, err
	}
	return Customer{Name: user.Name, Number: user.Number}, nil
}

// Customer is the contact snapshot exposed to the checkout flow.
type Customer struct {
	Name   string
	Number string
}

// UpdateProfile updates the user's profile fields.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req transport.UpdateProfileRequest) (transport.UserResponse, error) {
	number := req.Number
	if number != nil {
		normalized := phone.NormalizeE164Region(*number, s.region)
		number = &normalized
	}

	user, err := s.repo.UpdateProfile(ctx, repository.UpdateProfileParams{
		ID:      userID,
		Name:    req.Name,
		School:  req.School,
		Number:  number,
		Address: req.Address,
		Town:    req.Town,
	})
	if err != nil {
		return transport.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// ChangePassword rotates the user's password after verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req transport.ChangePasswordRequest) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperr.Unauthorized("current password is incorrect")
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("password hashing failed", "error", err)
		return apperr.Internal("could not change password")
	}

	return s.repo.UpdatePassword(ctx, userID, hash)
}

// ListUsers returns every account for the admin dashboard.
func (s *Service) ListUsers(ctx context.Context) (transport.UserListResponse, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.DatabaseError("auth.list_users", err)
		return transport.UserListResponse{}, apperr.Internal("could not load users")
	}

	out := make([]transport.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}
	return transport.UserListResponse{Users: out}, nil
}

// DeleteUser removes an account and its remaining cart entries.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.cart.DeleteByUser(ctx, id); err != nil {
		s.log.DatabaseError("auth.clear_cart", err)
		return apperr.Internal("could not delete user")
	}
	return s.repo.Delete(ctx, id)
}

// ResetPassword sets a user's password from the admin dashboard.
func (s *Service) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		s.log.Error("password hashing failed", "error", err)
		return apperr.Internal("could not reset password")
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

func (s *Service) issueToken(user repository.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"admin": user.IsAdmin(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.GetJWTSecret()))
}

func toUserResponse(user repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		School:     user.School,
		Level:      user.Level,
		Number:     user.Number,
		Address:    user.Address,
		Town:       user.Town,
		DateJoined: user.DateJoined.Format(time.RFC3339),
	}
}
