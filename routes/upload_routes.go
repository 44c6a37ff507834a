package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Inteegrus-Research/SP-tenderscope/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := protected.Group("/uploads")
	{
		uploads.POST("/presign", uploadController.PresignAttachment)
		uploads.POST("/confirm", uploadController.ConfirmUpload)
		uploads.DELETE("/:key", uploadController.DeleteAttachment)
	}
}
