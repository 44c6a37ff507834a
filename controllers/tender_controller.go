package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/tenders"
	"github.com/Inteegrus-Research/SP-tenderscope/utils"
)

type TenderController struct {
	Tenders *tenders.Service
}

type TenderRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Lat         *float64 `json:"lat" binding:"required"`
	Lng         *float64 `json:"lng" binding:"required"`
	Attachments []string `json:"attachments"`
}

func NewTenderController(db *gorm.DB) *TenderController {
	return &TenderController{Tenders: tenders.NewService(db)}
}

func (tc *TenderController) GetTenders(c *gin.Context) {
	list, err := tc.Tenders.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (tc *TenderController) GetTender(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tender id"})
		return
	}

	tender, err := tc.Tenders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tender)
}

func (tc *TenderController) CreateTender(c *gin.Context) {
	identity := utils.GetIdentity(c)
	var req TenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tender, err := tc.Tenders.Create(c.Request.Context(), *identity, tenders.Input{
		Title:       req.Title,
		Description: req.Description,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Attachments: req.Attachments,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tender)
}

func (tc *TenderController) UpdateTender(c *gin.Context) {
	identity := utils.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tender id"})
		return
	}

	var req TenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tender, err := tc.Tenders.Update(c.Request.Context(), *identity, id, tenders.Input{
		Title:       req.Title,
		Description: req.Description,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Attachments: req.Attachments,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tender)
}

func (tc *TenderController) DeleteTender(c *gin.Context) {
	identity := utils.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tender id"})
		return
	}

	if err := tc.Tenders.Delete(c.Request.Context(), *identity, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tender removed"})
}

func (tc *TenderController) GetMyTenders(c *gin.Context) {
	identity := utils.GetIdentity(c)
	list, err := tc.Tenders.ListForOwner(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
