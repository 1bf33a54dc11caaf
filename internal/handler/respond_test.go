package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authedContext(t *testing.T, companyID uint) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	return c, w
}

func TestAuthorizedCompany_MatchingToken(t *testing.T) {
	c, w := authedContext(t, 7)
	assert.True(t, authorizedCompany(c, 7))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorizedCompany_RejectsOtherCompany(t *testing.T) {
	c, w := authedContext(t, 7)
	assert.False(t, authorizedCompany(c, 8))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "company_mismatch")
}
