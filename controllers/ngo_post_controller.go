package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type NgoPostController struct{ Svc *services.NgoPostService }

func NewNgoPostController(s *services.NgoPostService) *NgoPostController {
	return &NgoPostController{Svc: s}
}

// POST /ngo/posts
func (h *NgoPostController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	p, err := h.Svc.Create(uid, &req)
	if err != nil { writeErr(c, err); return }
	resp.Created(c, p)
}

// GET /ngo/posts
func (h *NgoPostController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	items, err := h.Svc.ListForNgoUser(uid)
	if err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

// DELETE /ngo/posts/:id
func (h *NgoPostController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Delete(uid, uint(id)); err != nil { writeErr(c, err); return }
	resp.OK(c, gin.H{"deleted": true})
}

// GET /posts — บอร์ดประกาศสาธารณะ
func (h *NgoPostController) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.Svc.ListPublic(limit)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}
