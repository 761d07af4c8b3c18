package dto

// SignupRequest carries the full profile. Every field is required;
// binding rejects the request before any store access.
type SignupRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required" validate:"omitempty,email"`
	Password         string `json:"password" binding:"required"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	Gender           string `json:"gender" binding:"required"`
	DateOfBirth      string `json:"date_of_birth" binding:"required"`
	MembershipStatus string `json:"membership_status" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the trimmed user echo returned by signup and login.
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the shared response shape of signup and login.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
