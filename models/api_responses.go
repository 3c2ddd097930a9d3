package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every endpoint answers with.
type ApiResponse struct {
	Status    int          `json:"status"`
	IsSuccess bool         `json:"isSuccess"`
	Message   string       `json:"message,omitempty"`
	Result    any          `json:"result,omitempty"`
	Rate      *RateLimiter `json:"rate_limit,omitempty"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, status int, message string, result any) ApiResponse {
	return ApiResponse{
		Status:    status,
		IsSuccess: true,
		Message:   message,
		Result:    result,
		Rate:      getRateFromContext(c),
	}
}

func ErrorResponse(c *gin.Context, status int, message string) ApiResponse {
	return ApiResponse{
		Status:  status,
		Message: message,
		Rate:    getRateFromContext(c),
	}
}
