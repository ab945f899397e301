package dto

import "time"

// RequestOTPRequest payload.
type RequestOTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest payload.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// OfficialLoginRequest payload.
type OfficialLoginRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

// TokenResponse carries an issued session token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
	Identity  string    `json:"identity"`
}
