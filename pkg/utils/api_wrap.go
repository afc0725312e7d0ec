package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondSuccessWithCode(c, http.StatusOK, data, message)
}

func RespondSuccessWithCode(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps the business error taxonomy to response codes in
// one place. Anything outside the taxonomy is logged in full and surfaced
// as an opaque internal error.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDuplicateAccount):
		RespondError(c, http.StatusConflict, ErrDuplicateAccount.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, ErrAccountNotFound.Error())
	case errors.Is(err, ErrInvalidRole):
		RespondError(c, http.StatusBadRequest, ErrInvalidRole.Error())
	case errors.Is(err, ErrInvalidProfileType):
		RespondError(c, http.StatusBadRequest, ErrInvalidProfileType.Error())
	case errors.Is(err, ErrTokenInvalidOrExpired):
		RespondError(c, http.StatusBadRequest, ErrTokenInvalidOrExpired.Error())
	case errors.Is(err, ErrValidationFailure):
		RespondError(c, http.StatusBadRequest, ErrValidationFailure.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrNoDashboard):
		RespondError(c, http.StatusNotFound, ErrNoDashboard.Error())
	default:
		log.Printf("unexpected error [trace_id=%s]: %v", c.GetString("trace_id"), err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
