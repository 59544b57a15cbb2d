package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type DonationController struct {
	Svc     *services.DonationService
	Pickups *services.PickupService // ใช้เป็น guard ตอน cancel
}

func NewDonationController(s *services.DonationService, p *services.PickupService) *DonationController {
	return &DonationController{Svc: s, Pickups: p}
}

// POST /donations (donor)
func (h *DonationController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateDonationReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	res, err := h.Svc.Create(uid, &req)
	if err != nil { writeErr(c, err); return }
	resp.Created(c, res)
}

// GET /donations (ของ donor เอง)
func (h *DonationController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.Svc.ListForDonor(uid, limit)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// GET /donations/:id (เจ้าของเท่านั้น)
func (h *DonationController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	d, err := h.Svc.DetailForDonor(uid, uint(id))
	if err != nil { writeErr(c, err); return }

	// Items ถูก preload มาแล้ว (json:"-" เลยต้องส่งแยก)
	resp.OK(c, gin.H{"donation": d, "items": d.Items})
}

// PATCH /donations/:id/cancel — donor ยกเลิกของตัวเอง / admin ยกเลิกได้ทุกอัน
func (h *DonationController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Cancel(uid, role, uint(id), h.Pickups); err != nil {
		writeErr(c, err); return
	}
	resp.OK(c, gin.H{"status": "Cancelled"})
}

// ===== ฝั่ง NGO =====

// GET /ngo/donations?status=Requested
func (h *DonationController) ListForNgo(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.Svc.ListForNgoUser(uid, c.Query("status"), limit)
	if err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// PATCH /ngo/donations/:id/accept
func (h *DonationController) Accept(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.NgoAccept(uid, uint(id)); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"status": "Accepted"})
}

// PATCH /ngo/donations/:id/reject
func (h *DonationController) Reject(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.NgoReject(uid, uint(id)); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"status": "Rejected"})
}
