package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SignupRequest struct {
	Firstname string `json:"firstname" validate:"required,min=1,max=100"`
	Lastname  string `json:"lastname"  validate:"required,min=1,max=100"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"max=30"`
	Password  string `json:"password"  validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type UpdateProfileRequest struct {
	Firstname string `json:"firstname" validate:"required,min=1,max=100"`
	Lastname  string `json:"lastname"  validate:"required,min=1,max=100"`
	Phone     string `json:"phone"     validate:"max=30"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required,len=6"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Code        string `json:"code"        validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"isActive"`
}

type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int          `json:"expiresIn"` // seconds
	User         UserResponse `json:"user"`
}
