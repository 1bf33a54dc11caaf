package handler

import (
	"net/http"
	"strconv"

	"monedero/internal/service"

	"github.com/gin-gonic/gin"
)

type PointsConfigurationHandler struct {
	svc *service.PointsConfigurationService
}

func NewPointsConfigurationHandler(svc *service.PointsConfigurationService) *PointsConfigurationHandler {
	return &PointsConfigurationHandler{svc: svc}
}

type UpdatePointsConfigurationRequest struct {
	RequiredAmount float64 `json:"required_amount" binding:"required,gt=0"`
	PointsToEarn   float64 `json:"points_to_earn" binding:"gte=0"`
}

func (h *PointsConfigurationHandler) Get(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	if !authorizedCompany(c, uint(companyID)) {
		return
	}
	config, err := h.svc.GetByCompanyID(uint(companyID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "points_configuration": config})
}

func (h *PointsConfigurationHandler) Update(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	if !authorizedCompany(c, uint(companyID)) {
		return
	}
	var req UpdatePointsConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Update(uint(companyID), req.RequiredAmount, req.PointsToEarn); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
