package transport

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	School   string `json:"school" validate:"omitempty,max=200"`
	Level    string `json:"level" validate:"omitempty,max=50"`
	Number   string `json:"number" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Town     string `json:"town" validate:"omitempty,max=100"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest updates profile fields. Absent fields are unchanged.
type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=100"`
	School  *string `json:"school" validate:"omitempty,max=200"`
	Number  *string `json:"number" validate:"omitempty,max=30"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	Town    *string `json:"town" validate:"omitempty,max=100"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

// ResetPasswordRequest sets a user's password from the admin dashboard.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

type UserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	School     string `json:"school"`
	Level      string `json:"level"`
	Number     string `json:"number"`
	Address    string `json:"address"`
	Town       string `json:"town"`
	DateJoined string `json:"dateJoined"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
