package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/moderation"
	"github.com/Inteegrus-Research/SP-tenderscope/utils"
)

type ReportController struct {
	Moderation *moderation.Service
}

type CreateReportRequest struct {
	TenderID uint   `json:"tenderId" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Moderation: moderation.NewService(db)}
}

func (rc *ReportController) CreateReport(c *gin.Context) {
	identity := utils.GetIdentity(c)
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := rc.Moderation.File(c.Request.Context(), *identity, req.TenderID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (rc *ReportController) GetMyReports(c *gin.Context) {
	identity := utils.GetIdentity(c)
	reports, err := rc.Moderation.ListForReporter(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
