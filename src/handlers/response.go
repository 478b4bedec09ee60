package handlers

import "github.com/gin-gonic/gin"

// Envelope variants
const (
	VariantSuccess = "success"
	VariantWarning = "warning"
	VariantError   = "error"
)

// Envelope is the uniform response wrapper used by every endpoint
type Envelope struct {
	Msg        string `json:"msg"`
	Variant    string `json:"variant"`
	Payload    any    `json:"payload"`
	TotalCount *int   `json:"totalCount,omitempty"`
}

func respond(c *gin.Context, status int, msg, variant string, payload any) {
	c.JSON(status, Envelope{Msg: msg, Variant: variant, Payload: payload})
}

func respondCount(c *gin.Context, status int, msg, variant string, payload any, totalCount int) {
	c.JSON(status, Envelope{Msg: msg, Variant: variant, Payload: payload, TotalCount: &totalCount})
}
