package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-issue-service/internal/api/dto"
	"github.com/spec-kit/civic-issue-service/internal/session"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util/errorutil"
)

// AuthHandler exposes the session-gate login endpoints.
type AuthHandler struct {
	sessions *session.Service
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *session.Service) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// RequestCitizenOTP POST /auth/citizen/otp/request.
func (h *AuthHandler) RequestCitizenOTP(c *fiber.Ctx) error {
	var req dto.RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.sessions.RequestCitizenOTP(req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"sent": true}})
}

// VerifyCitizenOTP POST /auth/citizen/otp/verify.
func (h *AuthHandler) VerifyCitizenOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	issued, err := h.sessions.VerifyCitizenOTP(req.Email, req.OTP)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tokenResponse(issued)})
}

// LoginOfficial POST /auth/official/login.
func (h *AuthHandler) LoginOfficial(c *fiber.Ctx) error {
	var req dto.OfficialLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Code == "" || req.Password == "" {
		return apperrors.NewValidationError("code and password required", nil)
	}
	issued, err := h.sessions.LoginOfficial(req.Code, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"data": tokenResponse(issued)})
}

func tokenResponse(issued *session.IssuedToken) dto.TokenResponse {
	return dto.TokenResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Role:      string(issued.Role),
		Identity:  issued.Identity,
	}
}
