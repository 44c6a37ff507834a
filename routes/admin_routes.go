package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Inteegrus-Research/SP-tenderscope/controllers"
)

func SetupAdminRoutes(admin *gin.RouterGroup, adminController *controllers.AdminController) {
	admin.GET("/users", adminController.GetUsers)
	admin.GET("/reports", adminController.GetReports)
	admin.PUT("/reports/:id", adminController.UpdateReportStatus)
	admin.GET("/stats", adminController.GetStats)
}
