package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type NgoController struct {
	Svc        *services.NgoService
	Volunteers *services.VolunteerService
}

func NewNgoController(s *services.NgoService, v *services.VolunteerService) *NgoController {
	return &NgoController{Svc: s, Volunteers: v}
}

// GET /ngos — รายชื่อ NGO ที่ active (หน้า donor เลือกปลายทาง)
func (h *NgoController) ListPublic(c *gin.Context) {
	items, err := h.Svc.ListPublic()
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// GET /ngos/:id
func (h *NgoController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ngo, err := h.Svc.Get(uint(id))
	if err != nil { writeErr(c, err); return }
	if !ngo.Active {
		// ยังไม่อนุมัติ = ไม่มีตัวตนสำหรับคนนอก
		resp.NotFound(c, "not found"); return
	}
	resp.OK(c, ngo)
}

// GET /ngo/me — โปรไฟล์องค์กรของ user ที่ login
func (h *NgoController) MyProfile(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	ngo, err := h.Svc.ProfileForUser(uid)
	if err != nil { writeErr(c, err); return }
	resp.OK(c, ngo)
}

type AttachDocReq struct {
	Path string `json:"path" binding:"required"`
}

// PATCH /ngo/me/registration-doc — ผูกเอกสารที่อัปโหลดแล้วเข้ากับองค์กร
func (h *NgoController) AttachDoc(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req AttachDocReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	if err := h.Svc.AttachRegistrationDoc(uid, req.Path); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"path": req.Path})
}

// ===== Volunteers =====

// POST /ngo/volunteers — เปิดบัญชี volunteer ให้คนขององค์กร
func (h *NgoController) CreateVolunteer(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.ProvisionVolunteerReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	vol, err := h.Volunteers.Provision(uid, &req)
	if err != nil { writeErr(c, err); return }
	resp.Created(c, gin.H{"id": vol.ID, "userId": vol.UserID})
}

// GET /ngo/volunteers
func (h *NgoController) ListVolunteers(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	items, err := h.Volunteers.ListForNgoUser(uid)
	if err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"items": items})
}
