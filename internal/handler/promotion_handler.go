package handler

import (
	"net/http"
	"strconv"

	"monedero/internal/middleware"
	"monedero/internal/models"
	"monedero/internal/service"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	svc *service.PromotionService
}

func NewPromotionHandler(svc *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{svc: svc}
}

type InsertPromotionRequest struct {
	CompanyID      uint    `json:"company_id" binding:"required"`
	Description    string  `json:"description" binding:"required,max=256"`
	RequiredPoints float64 `json:"required_points" binding:"gte=0"`
}

func (h *PromotionHandler) Insert(c *gin.Context) {
	var req InsertPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !authorizedCompany(c, req.CompanyID) {
		return
	}
	id, err := h.svc.Insert(&models.PromotionConfiguration{
		CompanyID:      req.CompanyID,
		Description:    req.Description,
		RequiredPoints: req.RequiredPoints,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "promotion_configuration_id": id})
}

func (h *PromotionHandler) GetByCompanyID(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	if !authorizedCompany(c, uint(companyID)) {
		return
	}
	promotions, err := h.svc.GetByCompanyID(uint(companyID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "promotions": promotions})
}

// GetAvailable lists the promotions a client's balance has unlocked. An empty
// list is still a success; the message tells the caller apart from an error.
func (h *PromotionHandler) GetAvailable(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	result, err := h.svc.GetAvailableByPhone(uint(companyID), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	body := gin.H{"success": true, "promotions": result.Promotions}
	if result.NoneAvailable {
		body["message"] = "no promotions available"
	}
	c.JSON(http.StatusOK, body)
}

// Delete removes a promotion; the delete is scoped to the authenticated
// company, so another merchant's promotion reads as a miss.
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid promotion id"})
		return
	}
	if err := h.svc.Delete(middleware.GetCompanyID(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
