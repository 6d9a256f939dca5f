package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Schmandi/HIRED-server/internal/api/dto"
	"github.com/Schmandi/HIRED-server/internal/auth"
	"github.com/Schmandi/HIRED-server/internal/service"
	"github.com/Schmandi/HIRED-server/internal/session"
	apperrors "github.com/Schmandi/HIRED-server/pkg/util"
)

// AuthHandler exposes the token lifecycle endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	cookies *session.Transport
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookies *session.Transport) *AuthHandler {
	return &AuthHandler{auth: authService, cookies: cookies}
}

// Login handles POST /auth.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	// Field validation happens before any directory lookup.
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password are required", nil)
	}

	pair, err := h.auth.Login(c.Context(), req.Username, req.Password, c.IP())
	if err != nil {
		return err
	}

	h.cookies.Attach(c, pair.RefreshToken)
	return c.JSON(dto.AccessTokenResponse{AccessToken: pair.AccessToken})
}

// Refresh handles GET /auth/refresh. The refresh token arrives only via
// the session cookie; there is no request body.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken, ok := h.cookies.Extract(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized")
	}

	accessToken, err := h.auth.Refresh(c.Context(), refreshToken)
	if err != nil {
		return err
	}

	return c.JSON(dto.AccessTokenResponse{AccessToken: accessToken})
}

// Logout handles POST /auth/logout. It only clears the session cookie;
// issued tokens stay valid until their natural expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if _, ok := h.cookies.Extract(c); !ok {
		return c.SendStatus(http.StatusNoContent)
	}

	h.cookies.Clear(c)
	h.auth.Logout(c.Context())
	return c.JSON(dto.MessageResponse{Message: "Cookie cleared"})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password are required", nil)
	}

	user, err := h.auth.Register(c.Context(), req.Username, req.Password, req.Roles)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"roles":    user.Roles,
		},
	})
}

// Me handles GET /auth/me behind the bearer middleware.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(dto.MeResponse{Username: principal.Username, Roles: principal.Roles})
}
