package handler

import (
	"net/http"
	"strconv"

	"monedero/internal/service"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	svc *service.CompanyService
}

func NewCompanyHandler(svc *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

type RegisterCompanyRequest struct {
	CompanyName          string `json:"company_name" binding:"required,max=128"`
	UserName             string `json:"user_name" binding:"required,max=128"`
	Email                string `json:"email" binding:"required"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	Language             string `json:"language"`
}

func (h *CompanyHandler) Register(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	companyID, activationKey, err := h.svc.Register(service.CompanyRegistration{
		CompanyName:          req.CompanyName,
		UserName:             req.UserName,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Language:             req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	body := gin.H{"success": true, "company_id": companyID}
	// Activation emails are not delivered outside production; surface the key
	// so functional environments can activate the account.
	if gin.Mode() != gin.ReleaseMode {
		body["activation_key"] = activationKey
	}
	c.JSON(http.StatusCreated, body)
}

func (h *CompanyHandler) GetByID(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	company, err := h.svc.GetByCompanyID(uint(companyID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// GetPointsInCompany lists a client's balances across all companies.
func (h *CompanyHandler) GetPointsInCompany(c *gin.Context) {
	rows, err := h.svc.GetPointsInCompanyByPhone(c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "companies": rows})
}

// UploadLogo accepts a multipart logo upload for the company.
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	if !authorizedCompany(c, uint(companyID)) {
		return
	}
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()
	url, err := h.svc.UpdateLogo(c.Request.Context(), uint(companyID), file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url_image_logo": url})
}
