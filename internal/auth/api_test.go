package auth_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/adeyemik/union-register/go-api-server/internal/auth"
	"github.com/adeyemik/union-register/go-api-server/internal/member"
	"github.com/adeyemik/union-register/go-api-server/internal/model"
	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*auth.AuthHandler, *gorm.DB) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	authService := auth.NewAuthService(db, memberRepo)
	authHandler := auth.NewAuthHandler(authService)

	return authHandler, db
}

// admitMember seeds one member directly and returns the stored record
func admitMember(t *testing.T, db *gorm.DB, name string, isAdmin bool) *model.Member {
	t.Helper()

	code, err := member.GenerateAccessCode()
	require.NoError(t, err)

	m := model.NewMember(name, member.NormalizeName(name), code)
	m.IsAdmin = isAdmin
	require.NoError(t, db.Create(m).Error)

	return m
}

func TestVerifyMember_Success(t *testing.T) {
	// Given: Setup test environment
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/verify", authHandler.VerifyMember)

	// Given: An admitted member
	m := admitMember(t, db, "Ngozi Okafor", false)

	// When: Verifying with the issued code
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/verify",
		Body:   auth.VerifyRequest{AccessCode: m.AccessCode},
	})

	// Then: Verification succeeds and returns the member's name
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.VerifyMemberResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.True(t, response.Success)
	assert.Equal(t, "Ngozi Okafor", response.Name)
}

func TestVerifyMember_CaseInsensitive(t *testing.T) {
	// Given: Setup test environment
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/verify", authHandler.VerifyMember)

	// Given: An admitted member
	m := admitMember(t, db, "Adewale Musa", false)

	// When: Verifying with the lowercased, padded form of the code
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/verify",
		Body:   auth.VerifyRequest{AccessCode: "  " + strings.ToLower(m.AccessCode) + " "},
	})

	// Then: Verification still succeeds
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.VerifyMemberResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.True(t, response.Success)
}

func TestVerifyMember_InvalidCode(t *testing.T) {
	// Given: Setup test environment
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/verify", authHandler.VerifyMember)

	// Given: A member exists, but the submitted code belongs to nobody
	admitMember(t, db, "Chinedu Eze", false)

	// When: Verifying with a well-formed but unissued code
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/verify",
		Body:   auth.VerifyRequest{AccessCode: "AAAAAA"},
	})

	// Then: Verification fails with the generic invalid-code error
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-001", errorResponse.Code)
}

func TestVerifyMember_ValidationError_MalformedCode(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/verify", authHandler.VerifyMember)

	testCases := []struct {
		name string
		code string
	}{
		{name: "Too short", code: "AB2"},
		{name: "Too long", code: "ABCDEF2"},
		{name: "Excluded symbol O", code: "ABCDEO"},
		{name: "Excluded symbol 0", code: "ABCDE0"},
		{name: "Excluded symbol I", code: "ABCDEI"},
		{name: "Excluded symbol 1", code: "ABCDE1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: Verifying with a malformed code
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/verify",
				Body:   map[string]string{"accessCode": tc.code},
			})

			// Then: The request is rejected before any lookup
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestVerifyAdmin_Success(t *testing.T) {
	// Given: Setup test environment
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/verify-admin", authHandler.VerifyAdmin)

	// Given: An admin member
	admin := admitMember(t, db, "Funke Adebayo", true)

	// When: Verifying as admin
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/verify-admin",
		Body:   auth.VerifyRequest{AccessCode: admin.AccessCode},
	})

	// Then: Verification succeeds and echoes the code back
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.VerifyAdminResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.True(t, response.Success)
	assert.Equal(t, admin.AccessCode, response.AccessCode)
	assert.Equal(t, "Funke Adebayo", response.Name)
}

func TestVerifyAdmin_NonAdminThenPromoted(t *testing.T) {
	// Given: Setup test environment
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/verify-admin", authHandler.VerifyAdmin)

	// Given: A regular member
	m := admitMember(t, db, "Ibrahim Bello", false)

	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/verify-admin",
		Body:   auth.VerifyRequest{AccessCode: m.AccessCode},
	}

	// When: Verifying as admin before promotion
	firstRecorder := testutil.ExecuteRequest(t, router, request)

	// Then: Fails exactly like an unknown code
	assert.Equal(t, http.StatusUnauthorized, firstRecorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, firstRecorder, &errorResponse)
	assert.Equal(t, "AUTH-001", errorResponse.Code)

	// Given: The member is promoted to admin
	require.NoError(t, db.Model(&model.Member{}).
		Where("id = ?", m.ID).
		Update("is_admin", true).Error)

	// When: Verifying again with the same code
	secondRecorder := testutil.ExecuteRequest(t, router, request)

	// Then: Verification now succeeds
	assert.Equal(t, http.StatusOK, secondRecorder.Code)
}
