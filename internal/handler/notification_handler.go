package handler

import (
	"net/http"

	"monedero/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type AppAdRequest struct {
	CompanyID uint   `json:"company_id" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// SendAppAd sends the promo SMS advertising the mobile app to one client.
func (h *NotificationHandler) SendAppAd(c *gin.Context) {
	var req AppAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !authorizedCompany(c, req.CompanyID) {
		return
	}
	message, err := h.svc.SendAppAdMessage(c.Request.Context(), req.CompanyID, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
