package handler

import (
	"net/http"

	"monedero/internal/middleware"
	"monedero/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps a service outcome to an HTTP status and a reason-coded
// JSON body. Validation failures are client errors; configuration and storage
// failures are server errors with no internals leaked.
func respondError(c *gin.Context, err error) {
	reason := service.ReasonOf(err)
	status := http.StatusInternalServerError
	if service.KindOf(err) == service.KindValidation {
		switch reason {
		case service.ReasonDuplicateSaleKey, service.ReasonClientAlreadyExists, service.ReasonEmailExists:
			status = http.StatusConflict
		case service.ReasonPhoneNotFound, service.ReasonCompanyNotFound:
			status = http.StatusNotFound
		case service.ReasonInvalidCredentials, service.ReasonUserNotActive:
			status = http.StatusUnauthorized
		default:
			status = http.StatusBadRequest
		}
	}
	c.JSON(status, gin.H{"success": false, "code": string(reason)})
}

// authorizedCompany rejects requests whose target company differs from the
// authenticated token's company. Every managed handler must call it before
// touching company data.
func authorizedCompany(c *gin.Context, companyID uint) bool {
	if middleware.GetCompanyID(c) != companyID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "code": string(service.ReasonCompanyMismatch)})
		return false
	}
	return true
}
