package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Inteegrus-Research/SP-tenderscope/authz"
	"github.com/Inteegrus-Research/SP-tenderscope/moderation"
	"github.com/Inteegrus-Research/SP-tenderscope/tenders"
)

type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// respondError maps service errors to transport responses. Anything not in
// the expected taxonomy is a persistence failure and surfaces as a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to perform this action"})
	case errors.Is(err, tenders.ErrNotFound), errors.Is(err, moderation.ErrTenderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Tender not found"})
	case errors.Is(err, moderation.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
	case errors.Is(err, moderation.ErrDuplicateReport):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reported this tender"})
	case errors.Is(err, moderation.ErrReportClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Report is already closed"})
	case errors.Is(err, moderation.ErrEmptyReason):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reason is required"})
	case errors.Is(err, moderation.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
