package handler

import (
	"errors"
	"net/http"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/brnsuite/backend/internal/domain/shared"
	dataimport "github.com/brnsuite/backend/internal/infrastructure/import"
	"github.com/brnsuite/backend/internal/interfaces/http/dto"
	"github.com/brnsuite/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDKey)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with list meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts domain and import errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	var mismatch *procurement.ValueMismatchError
	if errors.As(err, &mismatch) {
		h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeValueMismatch, mismatch.Error())
		return
	}

	switch {
	case errors.Is(err, dataimport.ErrEmptyFile):
		h.Error(c, http.StatusUnprocessableEntity, dataimport.ErrCodeImportEmptyFile, err.Error())
	case errors.Is(err, dataimport.ErrNoItems):
		h.Error(c, http.StatusUnprocessableEntity, dataimport.ErrCodeImportNoItems, err.Error())
	case errors.Is(err, dataimport.ErrUnrecognizedDocument):
		h.Error(c, http.StatusUnprocessableEntity, dataimport.ErrCodeImportInvalidType, err.Error())
	default:
		h.InternalError(c, "An unexpected error occurred")
	}
}
