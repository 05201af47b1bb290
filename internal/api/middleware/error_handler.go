// Package middleware contains the gin middleware stack: error
// rendering, request ids, and actor extraction.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	Params    map[string]interface{} `json:"params,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// ErrorHandler renders errors attached by handlers into the JSON
// envelope. AppErrors map to their HTTP status and carry their params
// through; anything else is a 500 with the detail kept in the logs.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		requestID := c.GetString(RequestIDKey)

		if appErr, ok := errors.IsAppError(err); ok {
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error("Request failed",
					zap.String("request_id", requestID),
					zap.String("code", appErr.Code),
					zap.Error(err),
				)
			} else {
				logger.Debug("Request rejected",
					zap.String("request_id", requestID),
					zap.String("code", appErr.Code),
					zap.Error(err),
				)
			}
			c.JSON(appErr.HTTPStatus, errorResponse{
				Error:     appErr.Message,
				Code:      appErr.Code,
				Params:    appErr.Params,
				RequestID: requestID,
			})
			return
		}

		logger.Error("Unhandled request error",
			zap.String("request_id", requestID),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:     "internal server error",
			Code:      "INTERNAL_ERROR",
			RequestID: requestID,
		})
	}
}
