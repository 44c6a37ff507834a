package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Inteegrus-Research/SP-tenderscope/controllers"
)

func SetupTenderRoutes(protected *gin.RouterGroup, tenderController *controllers.TenderController) {
	tenders := protected.Group("/tenders")
	{
		tenders.POST("", tenderController.CreateTender)
		tenders.PUT("/:id", tenderController.UpdateTender)
		tenders.DELETE("/:id", tenderController.DeleteTender)
		tenders.GET("/user/me", tenderController.GetMyTenders)
	}
}
