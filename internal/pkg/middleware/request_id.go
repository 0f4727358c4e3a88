package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID propagates the caller's request id or assigns a new one
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Request().Header.Set(HeaderRequestID, requestID)
			c.Response().Header().Set(HeaderRequestID, requestID)
			c.Set("request_id", requestID)
			return next(c)
		}
	}
}
