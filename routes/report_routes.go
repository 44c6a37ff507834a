package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Inteegrus-Research/SP-tenderscope/controllers"
)

func SetupReportRoutes(protected *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := protected.Group("/reports")
	{
		reports.POST("", reportController.CreateReport)
		reports.GET("/user", reportController.GetMyReports)
	}
}
