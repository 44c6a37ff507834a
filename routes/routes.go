package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/auth"
	"github.com/Inteegrus-Research/SP-tenderscope/controllers"
	"github.com/Inteegrus-Research/SP-tenderscope/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, verifier *auth.Verifier) {
	// Initialize controllers
	authController := controllers.NewAuthController(db, verifier)
	tenderController := controllers.NewTenderController(db)
	reportController := controllers.NewReportController(db)
	adminController := controllers.NewAdminController(db)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
		public.GET("/tenders", tenderController.GetTenders)
		public.GET("/tenders/:id", tenderController.GetTender)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(verifier))
	{
		protected.GET("/auth/user", authController.GetUser)

		SetupTenderRoutes(protected, tenderController)
		SetupReportRoutes(protected, reportController)
		SetupUploadRoutes(protected, uploadController)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(verifier), middleware.AdminMiddleware())
	{
		SetupAdminRoutes(admin, adminController)
	}
}
