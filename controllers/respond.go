// Package controllers provides the HTTP handlers for the JSON API and the
// server-rendered pages.
// File: controllers/respond.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fanconnect/logger"
	"fanconnect/services"
)

// statusFor maps a service error kind onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// fail writes the {success:false, error} envelope. fallback is shown for
// anything that is not a service error.
func fail(c *gin.Context, op string, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error.Printf("[%s] %v", op, err)
	} else {
		logger.Warn.Printf("[%s] %d: %v", op, status, err)
	}
	c.JSON(status, gin.H{"success": false, "error": services.Message(err, fallback)})
}

// failAuth is fail for the auth endpoints, which answer with a bare {error}.
func failAuth(c *gin.Context, op string, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error.Printf("[%s] %v", op, err)
	} else {
		logger.Warn.Printf("[%s] %d: %v", op, status, err)
	}
	c.JSON(status, gin.H{"error": services.Message(err, fallback)})
}
