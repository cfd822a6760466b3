package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/users/auth/dto"
	"aptfee_backend/internals/features/users/auth/service"
	helper "aptfee_backend/internals/helpers"
)

type AuthController struct {
	DB     *gorm.DB
	Tokens *service.TokenService
}

func NewAuthController(db *gorm.DB, tokens *service.TokenService) *AuthController {
	return &AuthController{DB: db, Tokens: tokens}
}

// POST /api/auth/token
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.AuthenticationRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	token, _, err := ac.Tokens.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "authenticated", dto.AuthenticationResponse{Token: token, Authenticated: true})
}

// POST /api/auth/introspect
func (ac *AuthController) Introspect(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("Invalid request body"))
	}
	return helper.JsonOK(c, "", dto.IntrospectResponse{Valid: ac.Tokens.Introspect(c.UserContext(), req.Token)})
}

// POST /api/auth/logout
// Body token wins; otherwise the bearer header is revoked.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	var req dto.TokenRequest
	_ = c.BodyParser(&req)
	if req.Token == "" {
		req.Token = helper.GetRawAccessToken(c)
	}
	if err := ac.Tokens.Logout(c.UserContext(), req.Token); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "logged out", nil)
}

// POST /api/auth/refresh
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	token, _, err := ac.Tokens.Refresh(c.UserContext(), req.Token)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "refreshed", dto.AuthenticationResponse{Token: token, Authenticated: true})
}
