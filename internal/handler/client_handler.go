package handler

import (
	"net/http"
	"strconv"

	"monedero/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	svc *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

type RegisterClientRequest struct {
	CompanyID uint   `json:"company_id" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

func (h *ClientHandler) Register(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	clientID, err := h.svc.Register(req.CompanyID, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "client_id": clientID})
}

func (h *ClientHandler) GetByCompanyID(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	if !authorizedCompany(c, uint(companyID)) {
		return
	}
	mappings, err := h.svc.GetByCompanyID(uint(companyID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "clients": mappings})
}

func (h *ClientHandler) GetByCompanyIDPhone(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	if !authorizedCompany(c, uint(companyID)) {
		return
	}
	mapping, err := h.svc.GetByCompanyIDPhone(uint(companyID), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "client": mapping})
}
