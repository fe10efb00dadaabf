package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/app/services"
	"github.com/shashiranjanraj/dinein/pkg/ctx"
	"github.com/shashiranjanraj/dinein/pkg/logger"
	"github.com/shashiranjanraj/dinein/pkg/metrics"
	"github.com/shashiranjanraj/dinein/pkg/validate"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup answers in plain text: the success line or the reason it failed.
func (h *AuthController) Signup(c *ctx.Context) {
	var in services.SignupInput
	if err := c.Bind(&in); err != nil {
		metrics.Signups.WithLabelValues("invalid").Inc()
		decodeFailed(c, err)
		c.String(http.StatusBadRequest, invalidRequest)
		return
	}

	user, err := h.auth.Signup(c.Context(), in)
	switch {
	case err == nil:
		metrics.Signups.WithLabelValues("created").Inc()
		logger.WithCtx(c.Context()).Info("user registered", "user_id", user.ID)
		c.String(http.StatusOK, "User registered successfully!")

	case errors.Is(err, services.ErrEmailTaken):
		metrics.Signups.WithLabelValues("conflict").Inc()
		c.String(http.StatusConflict, "%s", err.Error())

	case errors.Is(err, validate.ErrInvalidPhone),
		errors.Is(err, validate.ErrInvalidAge),
		errors.Is(err, validate.ErrWeakPassword),
		errors.Is(err, validate.ErrPasswordTooLong):
		metrics.Signups.WithLabelValues("invalid").Inc()
		c.String(http.StatusBadRequest, "%s", err.Error())

	default:
		if msg, ok := validationMessage(err); ok {
			metrics.Signups.WithLabelValues("invalid").Inc()
			c.String(http.StatusBadRequest, "%s", msg)
			return
		}
		metrics.Signups.WithLabelValues("error").Inc()
		logger.WithCtx(c.Context()).Error("signup failed", "error", err)
		c.String(http.StatusInternalServerError, "Error during signup.")
	}
}

type loginResponse struct {
	Message string         `json:"message"`
	User    models.Profile `json:"user"`
}

// Login answers an unknown email and a wrong password with the same 401.
func (h *AuthController) Login(c *ctx.Context) {
	var in services.LoginInput
	if err := c.Bind(&in); err != nil {
		metrics.Logins.WithLabelValues("invalid").Inc()
		decodeFailed(c, err)
		c.Error(http.StatusBadRequest, invalidRequest)
		return
	}

	user, err := h.auth.Login(c.Context(), in)
	switch {
	case err == nil:
		metrics.Logins.WithLabelValues("success").Inc()
		c.JSON(http.StatusOK, loginResponse{Message: "Login successful!", User: user.Profile()})

	case errors.Is(err, services.ErrInvalidCredentials):
		metrics.Logins.WithLabelValues("invalid").Inc()
		logger.WithCtx(c.Context()).Warn("login failed", "ip", c.ClientIP())
		c.Error(http.StatusUnauthorized, err.Error())

	default:
		metrics.Logins.WithLabelValues("error").Inc()
		internalError(c, "Error during login.", err)
	}
}
