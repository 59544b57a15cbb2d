package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=donor ngo volunteer admin"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	// role=ngo
	NgoName             string `json:"ngoName"`
	NgoDescription      string `json:"ngoDescription"`
	RegistrationDocPath string `json:"registrationDocPath"`

	// role=admin
	Department string `json:"department"`
	Reason     string `json:"reason"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	if req.Role == "ngo" && req.NgoName == "" {
		resp.BadRequest(c, "ngoName is required for ngo signup"); return
	}

	user, err := h.Svc.Register(services.RegisterInput{
		Email: req.Email, Password: req.Password, FullName: req.FullName,
		Phone: req.Phone, Role: req.Role,
		Address: req.Address, City: req.City, State: req.State, Pincode: req.Pincode,
		NgoName: req.NgoName, NgoDescription: req.NgoDescription,
		RegistrationDocPath: req.RegistrationDocPath,
		Department:          req.Department, Reason: req.Reason,
	})
	if err != nil { writeErr(c, err); return }

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "fullName": user.FullName, "role": user.Role,
	})
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		// ไม่บอกว่า email หรือรหัสผิด
		resp.Unauthorized(c, "invalid credentials"); return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "fullName": user.FullName, "role": user.Role,
		},
	})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := h.Svc.GetProfile(uid)
	if err != nil { resp.NotFound(c, "user not found"); return }
	resp.OK(c, user)
}

type UpdateMeReq struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Pincode  *string `json:"pincode"`
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req UpdateMeReq
	if err := c.ShouldBindJSON(&req); err != nil { resp.BadRequest(c, err.Error()); return }

	updates := map[string]any{}
	if req.FullName != nil { updates["full_name"] = *req.FullName }
	if req.Phone != nil { updates["phone"] = *req.Phone }
	if req.Address != nil { updates["address"] = *req.Address }
	if req.City != nil { updates["city"] = *req.City }
	if req.State != nil { updates["state"] = *req.State }
	if req.Pincode != nil { updates["pincode"] = *req.Pincode }

	user, err := h.Svc.UpdateProfile(uid, updates)
	if err != nil { writeErr(c, err); return }
	resp.OK(c, user)
}
