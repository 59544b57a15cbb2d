package controllers

import (
	"strconv"
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PickupController struct{ Svc *services.PickupService }

func NewPickupController(s *services.PickupService) *PickupController {
	return &PickupController{Svc: s}
}

// POST /ngo/donations/:id/pickup — สร้าง pickup + มอบหมาย volunteer
func (h *PickupController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	donationID, _ := strconv.Atoi(c.Param("id"))

	var req services.CreatePickupReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	p, err := h.Svc.CreateAndAssign(uid, uint(donationID), &req)
	if err != nil { writeErr(c, err); return }
	resp.Created(c, gin.H{"id": p.ID, "donationId": p.DonationID, "status": "Assigned"})
}

type RescheduleReq struct {
	ScheduledAt *time.Time `json:"scheduledAt" binding:"required"`
}

// PATCH /ngo/pickups/:id/schedule — เลื่อนนัดรับของ
func (h *PickupController) Reschedule(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req RescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	if err := h.Svc.Reschedule(uid, uint(id), req.ScheduledAt); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"scheduledAt": req.ScheduledAt})
}

// GET /volunteer/pickups — งานของ volunteer ที่ login อยู่
func (h *PickupController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	items, err := h.Svc.ListForVolunteerUser(uid)
	if err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// PATCH /volunteer/pickups/:id/advance — เดินหน้าหนึ่งขั้น
func (h *PickupController) Advance(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	status, err := h.Svc.Advance(uid, uint(id))
	if err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"status": status})
}

// PATCH /volunteer/pickups/:id/cancel
func (h *PickupController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.CancelByVolunteer(uid, uint(id)); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"status": "Cancelled"})
}
