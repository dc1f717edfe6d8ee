package dto

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// UpdateProfileRequest carries a partial field set; empty fields are left
// untouched. A non-empty password is re-hashed before storage.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse exposes only public user fields.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type UsersResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}
