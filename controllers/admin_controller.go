package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/moderation"
	"github.com/Inteegrus-Research/SP-tenderscope/models"
	"github.com/Inteegrus-Research/SP-tenderscope/utils"
)

type AdminController struct {
	DB         *gorm.DB
	Moderation *moderation.Service
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Moderation: moderation.NewService(db)}
}

func (ac *AdminController) GetUsers(c *gin.Context) {
	var users []models.User
	err := ac.DB.WithContext(c.Request.Context()).
		Select("id", "name", "email", "is_admin", "created_at").
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ac *AdminController) GetReports(c *gin.Context) {
	reports, err := ac.Moderation.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (ac *AdminController) UpdateReportStatus(c *gin.Context) {
	identity := utils.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	var req UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, ok := models.ParseReportStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	report, err := ac.Moderation.Transition(c.Request.Context(), *identity, id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (ac *AdminController) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	var userCount, tenderCount, reportCount, pendingCount int64

	if err := ac.DB.WithContext(ctx).Model(&models.User{}).Count(&userCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := ac.DB.WithContext(ctx).Model(&models.Tender{}).Count(&tenderCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := ac.DB.WithContext(ctx).Model(&models.Report{}).Count(&reportCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := ac.DB.WithContext(ctx).Model(&models.Report{}).
		Where("status = ?", models.ReportPending).Count(&pendingCount).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":          userCount,
		"tenders":        tenderCount,
		"reports":        reportCount,
		"pendingReports": pendingCount,
	})
}
