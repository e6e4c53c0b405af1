package models

import (
	"github.com/gin-gonic/gin"
	"github.com/matrizimoveis/matriz_portal/utils"
)

// Response is the body of every JSON error answered by the portal
type Response struct {
	Status    int    `json:"status"`
	Err       string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// APIError is a Response describing a failed request
type APIError Response

func (e *APIError) Error() string {
	return e.Err
}

// SendAPIError answers with a JSON error carrying the request id set by utils.RequestLogger, and aborts the chain
func SendAPIError(ctx *gin.Context, status int, err string) {
	ctx.AbortWithStatusJSON(status, APIError{
		Status:    status,
		Err:       err,
		RequestID: ctx.Writer.Header().Get(utils.RequestIDHeader),
	})
}
