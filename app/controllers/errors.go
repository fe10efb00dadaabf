package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/dinein/app/services"
	"github.com/shashiranjanraj/dinein/pkg/ctx"
	"github.com/shashiranjanraj/dinein/pkg/logger"
)

// invalidRequest answers any body that fails to decode.
const invalidRequest = "Invalid request data."

// decodeFailed logs why a body was rejected. The client only sees
// invalidRequest.
func decodeFailed(c *ctx.Context, err error) {
	logger.WithCtx(c.Context()).Warn("decode request body", "error", err, "path", c.R.URL.Path)
}

// validationMessage returns the client-facing text of a validation failure.
func validationMessage(err error) (string, bool) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr.Message, true
	}
	return "", false
}

// internalError logs err with the request id and writes a generic 500
// {"error": msg}. The cause never reaches the client.
func internalError(c *ctx.Context, msg string, err error) {
	logger.WithCtx(c.Context()).Error(msg, "error", err)
	c.Error(http.StatusInternalServerError, msg)
}
