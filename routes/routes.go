package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, rdb *redis.Client, store storage.Store) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	ngoRepo := repository.NewNgoRepository(db)
	adminReqRepo := repository.NewPendingAdminRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	pickupRepo := repository.NewPickupRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	postRepo := repository.NewNgoPostRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Services
	email := services.NewEmailService(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	authSvc := services.NewAuthService(db, userRepo, ngoRepo, adminReqRepo, cfg.JWTSecret, cfg.JWTTTL)
	donationSvc := services.NewDonationService(db, donationRepo, ngoRepo, userRepo, email)
	pickupSvc := services.NewPickupService(db, pickupRepo, donationRepo, ngoRepo, volunteerRepo, userRepo, email, donationSvc.Status)
	approvalSvc := services.NewApprovalService(db, ngoRepo, adminReqRepo, userRepo, auditRepo, email)
	adminSvc := services.NewAdminService(ngoRepo, donationRepo, volunteerRepo, userRepo, adminReqRepo)
	ngoSvc := services.NewNgoService(ngoRepo)
	volunteerSvc := services.NewVolunteerService(db, volunteerRepo, userRepo, ngoRepo)
	postSvc := services.NewNgoPostService(postRepo, ngoRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	donationCtrl := controllers.NewDonationController(donationSvc, pickupSvc)
	pickupCtrl := controllers.NewPickupController(pickupSvc)
	adminCtrl := controllers.NewAdminController(adminSvc, approvalSvc)
	ngoCtrl := controllers.NewNgoController(ngoSvc, volunteerSvc)
	postCtrl := controllers.NewNgoPostController(postSvc)
	uploadCtrl := controllers.NewUploadController(store)

	// กันยิงซ้ำจากปุ่มค้าง/retry — ใส่เฉพาะกลุ่มที่เปลี่ยนสถานะ
	idemp := middlewares.IdempotencyMiddleware(rdb, cfg.IdempTTL)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public
	r.GET("/ngos", ngoCtrl.ListPublic)
	r.GET("/ngos/:id", ngoCtrl.Detail)
	r.GET("/posts", postCtrl.ListPublic)

	// Uploads (ต้องล็อกอิน — ทุก role อัปโหลดได้)
	r.POST("/uploads", middlewares.AuthMiddleware(), uploadCtrl.Upload)

	// Donor
	donor := r.Group("/donations", middlewares.AuthMiddleware("donor"))
	{
		donor.POST("", idemp, donationCtrl.Create)
		donor.GET("", donationCtrl.ListMine)
		donor.GET("/:id", donationCtrl.Detail)
		donor.PATCH("/:id/cancel", idemp, donationCtrl.Cancel)
	}

	// NGO
	ngo := r.Group("/ngo", middlewares.AuthMiddleware("ngo"))
	{
		ngo.GET("/me", ngoCtrl.MyProfile)
		ngo.PATCH("/me/registration-doc", ngoCtrl.AttachDoc)

		ngo.GET("/donations", donationCtrl.ListForNgo)
		ngo.PATCH("/donations/:id/accept", idemp, donationCtrl.Accept)
		ngo.PATCH("/donations/:id/reject", idemp, donationCtrl.Reject)
		ngo.POST("/donations/:id/pickup", idemp, pickupCtrl.Create)
		ngo.PATCH("/pickups/:id/schedule", pickupCtrl.Reschedule)

		ngo.POST("/volunteers", ngoCtrl.CreateVolunteer)
		ngo.GET("/volunteers", ngoCtrl.ListVolunteers)

		ngo.POST("/posts", postCtrl.Create)
		ngo.GET("/posts", postCtrl.ListMine)
		ngo.DELETE("/posts/:id", postCtrl.Delete)
	}

	// Volunteer
	vol := r.Group("/volunteer", middlewares.AuthMiddleware("volunteer"))
	{
		vol.GET("/pickups", pickupCtrl.ListMine)
		vol.PATCH("/pickups/:id/advance", idemp, pickupCtrl.Advance)
		vol.PATCH("/pickups/:id/cancel", idemp, pickupCtrl.Cancel)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/stats", adminCtrl.Stats)
		admin.GET("/ngos", adminCtrl.ListNgos) // ?active=false = รออนุมัติ
		admin.GET("/donations", adminCtrl.ListDonations)
		admin.GET("/volunteers", adminCtrl.ListVolunteers)
		admin.GET("/donors", adminCtrl.ListDonors)
		admin.GET("/pending-admins", adminCtrl.PendingAdmins)
		admin.GET("/audit-logs", adminCtrl.AuditLogs)

		admin.PATCH("/ngos/:id/approve", idemp, adminCtrl.ApproveNgo)
		admin.DELETE("/ngos/:id", idemp, adminCtrl.RejectNgo)
		admin.PATCH("/ngos/:id/toggle", idemp, adminCtrl.ToggleNgo)
		admin.PATCH("/pending-admins/:id/approve", idemp, adminCtrl.ApproveAdmin)
		admin.PATCH("/pending-admins/:id/reject", idemp, adminCtrl.RejectAdmin)

		// admin ยกเลิก donation ใช้เส้นเดียวกับ donor (เช็ค role ใน service)
		admin.PATCH("/donations/:id/cancel", idemp, donationCtrl.Cancel)
	}
}
