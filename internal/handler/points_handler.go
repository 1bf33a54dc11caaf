package handler

import (
	"net/http"

	"monedero/internal/service"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	svc *service.PointsService
}

func NewPointsHandler(svc *service.PointsService) *PointsHandler {
	return &PointsHandler{svc: svc}
}

type AwardPointsRequest struct {
	CompanyID  uint    `json:"company_id" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	SaleKey    string  `json:"sale_key"`
	SaleAmount float64 `json:"sale_amount" binding:"required,gt=0"`
}

// Award registers one sale. earned_points of zero is still a success (sale
// below the required amount).
func (h *PointsHandler) Award(c *gin.Context) {
	var req AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	earned, err := h.svc.AwardPoints(req.CompanyID, req.Phone, req.SaleKey, req.SaleAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"earned_points": earned,
	})
}
