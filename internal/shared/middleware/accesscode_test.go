package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/adeyemik/union-register/go-api-server/internal/model"
	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/middleware"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubVerifier accepts exactly one code and returns a fixed admin for it
type stubVerifier struct {
	code  string
	admin *model.Member
}

func (s *stubVerifier) AdminByCode(_ context.Context, code string) (*model.Member, error) {
	if code == s.code {
		return s.admin, nil
	}
	return nil, fmt.Errorf("invalid code")
}

// setupGuardedRouter wires a probe route behind AdminOnly
func setupGuardedRouter(verifier middleware.AdminVerifier) *gin.Engine {
	router := testutil.SetupTestRouter()

	guarded := router.Group("/admin", middleware.AdminOnly(verifier))
	guarded.GET("/probe", func(c *gin.Context) {
		id, _ := middleware.GetAdminMemberID(c)
		c.JSON(http.StatusOK, gin.H{"adminId": id})
	})

	return router
}

func TestAdminOnly_ValidCode(t *testing.T) {
	// Given: A guarded route and a known admin code
	admin := &model.Member{ID: 7, Name: "Funke Adebayo", IsAdmin: true}
	router := setupGuardedRouter(&stubVerifier{code: "Q7K2MN", admin: admin})

	// When: Requesting with the code in the header
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/admin/probe",
		Headers: map[string]string{middleware.AccessCodeHeader: "Q7K2MN"},
	})

	// Then: The request passes and the admin identity is in context
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]uint32
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, uint32(7), response["adminId"])
}

func TestAdminOnly_MissingHeader(t *testing.T) {
	// Given: A guarded route
	router := setupGuardedRouter(&stubVerifier{code: "Q7K2MN"})

	// When: Requesting without the header
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/admin/probe",
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-002", errorResponse.Code)
}

func TestAdminOnly_InvalidCode(t *testing.T) {
	// Given: A guarded route
	router := setupGuardedRouter(&stubVerifier{code: "Q7K2MN"})

	// When: Requesting with a code the verifier rejects
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/admin/probe",
		Headers: map[string]string{middleware.AccessCodeHeader: "AAAAAA"},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-002", errorResponse.Code)
}
