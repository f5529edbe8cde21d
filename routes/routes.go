package routes

import (
	"tokomember-backend/config"
	"tokomember-backend/controllers"
	"tokomember-backend/services"
	"tokomember-backend/store"
	"tokomember-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(s *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	whatsappService := services.NewWhatsAppService(s)
	birthdayService := services.NewBirthdayService(s)

	authController := &controllers.AuthController{Store: s}
	memberController := &controllers.MemberController{Store: s}
	approvalController := &controllers.ApprovalController{Store: s}
	logController := &controllers.LogController{Store: s}
	dashboardController := &controllers.DashboardController{Store: s}
	blastController := &controllers.BlastController{Store: s, WhatsApp: whatsappService, Birthday: birthdayService}

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", approvalController.Register)

		auth.Use(utils.AuthMiddleware())
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Member routes
		members := api.Group("/members")
		{
			members.POST("", memberController.Create)
			members.GET("", memberController.List)
			members.GET("/:id", memberController.Get)
			members.PUT("/:id", memberController.Update)
			members.DELETE("/:id", memberController.Delete)
			members.POST("/:id/reset", memberController.Reset)
			members.POST("/:id/promo", memberController.MarkPromo)
		}

		// Pending approval routes
		pending := api.Group("/pending")
		{
			pending.GET("", approvalController.List)
			pending.POST("/:id/approve", approvalController.Approve)
			pending.POST("/:id/reject", approvalController.Reject)
		}

		// Activity log routes
		api.GET("/logs", logController.List)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Blasting & birthday routes
		templates := api.Group("/templates")
		{
			templates.GET("/:store", blastController.GetTemplate)
			templates.PUT("/:store", blastController.UpdateTemplate)
		}
		blast := api.Group("/blast")
		{
			blast.POST("/send/:id", blastController.Send)
			blast.POST("/reset", blastController.ResetAll)
		}
		birthdays := api.Group("/birthdays")
		{
			birthdays.GET("", blastController.Birthdays)
			birthdays.POST("/:id/send", blastController.SendBirthday)
		}
	}

	return r
}
