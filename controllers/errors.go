package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// map sentinel จาก services → HTTP status เดียวกันทุก endpoint
// StaleState ต้องเป็น 409 เสมอ ให้ client รู้ว่าแพ้ race ไม่ใช่ขอผิด
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrStaleState):
		resp.Conflict(c, "state changed, refresh and retry")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, "invalid state for this action")
	case errors.Is(err, services.ErrNotPending):
		resp.BadRequest(c, "already reviewed")
	case errors.Is(err, services.ErrInactiveNgo):
		resp.BadRequest(c, "ngo is not active")
	case errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, "email already registered")
	case errors.Is(err, services.ErrInvalidAmount):
		resp.BadRequest(c, "money donation requires a positive amount")
	case errors.Is(err, services.ErrItemsRequired):
		resp.BadRequest(c, "at least one item is required")
	default:
		resp.ServerError(c, err)
	}
}
