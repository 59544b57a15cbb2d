package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc      *services.AdminService
	Approval *services.ApprovalService
}

func NewAdminController(s *services.AdminService, a *services.ApprovalService) *AdminController {
	return &AdminController{Svc: s, Approval: a}
}

// GET /admin/stats
func (h *AdminController) Stats(c *gin.Context) {
	st, err := h.Svc.Stats()
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, st)
}

// GET /admin/ngos?active=true|false
func (h *AdminController) ListNgos(c *gin.Context) {
	var active *bool
	if s := c.Query("active"); s != "" {
		v := s == "true"
		active = &v
	}
	items, err := h.Svc.ListNgos(active)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/donations?status=Requested&category=books
func (h *AdminController) ListDonations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	items, err := h.Svc.ListDonations(c.Query("status"), c.Query("category"), limit)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/volunteers
func (h *AdminController) ListVolunteers(c *gin.Context) {
	items, err := h.Svc.ListVolunteers()
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/donors
func (h *AdminController) ListDonors(c *gin.Context) {
	items, err := h.Svc.ListDonors()
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/pending-admins
func (h *AdminController) PendingAdmins(c *gin.Context) {
	items, err := h.Approval.PendingAdminRequests()
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/audit-logs?limit=100
func (h *AdminController) AuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	items, err := h.Approval.AuditTrail(limit)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// ===== การตัดสิน =====

type RejectReq struct {
	Reason string `json:"reason"`
}

// PATCH /admin/ngos/:id/approve
func (h *AdminController) ApproveNgo(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Approval.ApproveNgo(adminID, uint(id)); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"active": true})
}

// DELETE /admin/ngos/:id — reject แล้วลบทิ้ง สมัครใหม่ได้
func (h *AdminController) RejectNgo(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req RejectReq
	_ = c.ShouldBindJSON(&req) // reason ไม่บังคับ

	if err := h.Approval.RejectNgo(adminID, uint(id), req.Reason); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"deleted": true})
}

// PATCH /admin/pending-admins/:id/approve
func (h *AdminController) ApproveAdmin(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Approval.ApproveAdmin(adminID, uint(id)); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"status": "approved"})
}

// PATCH /admin/pending-admins/:id/reject
func (h *AdminController) RejectAdmin(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req RejectReq
	_ = c.ShouldBindJSON(&req)

	if err := h.Approval.RejectAdmin(adminID, uint(id), req.Reason); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"status": "rejected"})
}

// PATCH /admin/ngos/:id/toggle
func (h *AdminController) ToggleNgo(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	active, err := h.Svc.ToggleNgo(uint(id))
	if err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"active": active})
}
