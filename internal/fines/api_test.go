package fines_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/adeyemik/union-register/go-api-server/internal/fines"
	"github.com/adeyemik/union-register/go-api-server/internal/member"
	"github.com/adeyemik/union-register/go-api-server/internal/model"
	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for fine handler tests
func setupTestEnvironment(t *testing.T) (*fines.FineHandler, *gorm.DB) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	fineRepo := fines.NewFineRepository()
	fineService := fines.NewFineService(db, fineRepo, memberRepo)
	fineHandler := fines.NewFineHandler(fineService)

	return fineHandler, db
}

// seedMember inserts one member directly and returns the stored record
func seedMember(t *testing.T, db *gorm.DB, name string) *model.Member {
	t.Helper()

	code, err := member.GenerateAccessCode()
	require.NoError(t, err)

	m := model.NewMember(name, member.NormalizeName(name), code)
	require.NoError(t, db.Create(m).Error)

	return m
}

// addFine records one fine through the API, expecting success
func addFine(t *testing.T, router *gin.Engine, memberID uint32, amount int64, reason string) *fines.FineResponse {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/fines",
		Body: fines.AddFineRequest{
			MemberID: memberID,
			Amount:   amount,
			Reason:   reason,
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response fines.FineResponse
	testutil.ParseResponse(t, recorder, &response)
	return &response
}

func TestAddFine_Success(t *testing.T) {
	// Given: Setup test environment
	fineHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/fines", fineHandler.AddFine)

	m := seedMember(t, db, "Ngozi Okafor")

	// When: Charging a fine
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/fines",
		Body: fines.AddFineRequest{
			MemberID: m.ID,
			Amount:   2000,
			Reason:   "Missed general meeting",
		},
	})

	// Then: The fine is recorded unpaid
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response fines.FineResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, m.ID, response.MemberID)
	assert.Equal(t, int64(2000), response.Amount)
	assert.Equal(t, "Missed general meeting", response.Reason)
	assert.Equal(t, model.FineStatusUnpaid, response.Status)
	assert.False(t, response.IssuedAt.IsZero())
}

func TestAddFine_UnknownMember(t *testing.T) {
	// Given: Setup test environment
	fineHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/fines", fineHandler.AddFine)

	// When: Charging a fine to a member id that does not exist
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/fines",
		Body: fines.AddFineRequest{
			MemberID: 9999,
			Amount:   2000,
			Reason:   "Missed general meeting",
		},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestUpdateFine_PartialPatch(t *testing.T) {
	// Given: Setup test environment
	fineHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/fines", fineHandler.AddFine)
	router.PATCH("/api/v1/fines/:id", fineHandler.UpdateFine)

	m := seedMember(t, db, "Adewale Musa")
	fine := addFine(t, router, m.ID, 2000, "Late to meeting")

	// When: Patching only the amount
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    fmt.Sprintf("/api/v1/fines/%d", fine.ID),
		Body:   map[string]any{"amount": 3500},
	})

	// Then: The amount changes, the rest is untouched
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated fines.FineResponse
	testutil.ParseResponse(t, recorder, &updated)
	assert.Equal(t, int64(3500), updated.Amount)
	assert.Equal(t, "Late to meeting", updated.Reason)
	assert.Equal(t, model.FineStatusUnpaid, updated.Status)

	// When: Patching reason and status together
	secondRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    fmt.Sprintf("/api/v1/fines/%d", fine.ID),
		Body:   map[string]any{"reason": "Absent from meeting", "status": "paid"},
	})

	// Then: Both fields change, the patched amount survives
	assert.Equal(t, http.StatusOK, secondRecorder.Code)

	var patched fines.FineResponse
	testutil.ParseResponse(t, secondRecorder, &patched)
	assert.Equal(t, int64(3500), patched.Amount)
	assert.Equal(t, "Absent from meeting", patched.Reason)
	assert.Equal(t, model.FineStatusPaid, patched.Status)
}

func TestUpdateFine_ValidationError_BadStatus(t *testing.T) {
	// Given: Setup test environment
	fineHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/fines", fineHandler.AddFine)
	router.PATCH("/api/v1/fines/:id", fineHandler.UpdateFine)

	m := seedMember(t, db, "Chinedu Eze")
	fine := addFine(t, router, m.ID, 2000, "Late to meeting")

	// When: Patching with a status outside paid/unpaid
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    fmt.Sprintf("/api/v1/fines/%d", fine.ID),
		Body:   map[string]any{"status": "waived"},
	})

	// Then: Verify validation error
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestMarkPaidAndUnpaid_Toggle(t *testing.T) {
	// Given: Setup test environment
	fineHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/fines", fineHandler.AddFine)
	router.POST("/api/v1/fines/:id/paid", fineHandler.MarkPaid)
	router.POST("/api/v1/fines/:id/unpaid", fineHandler.MarkUnpaid)

	m := seedMember(t, db, "Funke Adebayo")
	fine := addFine(t, router, m.ID, 1500, "Absent without apology")

	// When: Marking the fine paid
	paidRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/fines/%d/paid", fine.ID),
	})

	// Then: Status flips to paid
	assert.Equal(t, http.StatusOK, paidRecorder.Code)

	var paid fines.FineResponse
	testutil.ParseResponse(t, paidRecorder, &paid)
	assert.Equal(t, model.FineStatusPaid, paid.Status)

	// When: Marking it unpaid again
	unpaidRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/fines/%d/unpaid", fine.ID),
	})

	// Then: Status flips back, amount and reason untouched
	assert.Equal(t, http.StatusOK, unpaidRecorder.Code)

	var unpaid fines.FineResponse
	testutil.ParseResponse(t, unpaidRecorder, &unpaid)
	assert.Equal(t, model.FineStatusUnpaid, unpaid.Status)
	assert.Equal(t, fine.Amount, unpaid.Amount)
	assert.Equal(t, fine.Reason, unpaid.Reason)
}

func TestDeleteFine_RemovedFromListing(t *testing.T) {
	// Given: Setup test environment
	fineHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/fines", fineHandler.AddFine)
	router.DELETE("/api/v1/fines/:id", fineHandler.DeleteFine)
	router.GET("/api/v1/members/:id/fines", fineHandler.ListByMember)

	m := seedMember(t, db, "Ibrahim Bello")
	fine := addFine(t, router, m.ID, 2500, "Missed general meeting")

	// When: Deleting the fine
	deleteRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/fines/%d", fine.ID),
	})
	require.Equal(t, http.StatusOK, deleteRecorder.Code)

	// Then: The member's listing is empty again
	listRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/members/%d/fines", m.ID),
	})
	assert.Equal(t, http.StatusOK, listRecorder.Code)

	var response fines.ListFinesResponse
	testutil.ParseResponse(t, listRecorder, &response)
	assert.Empty(t, response.Fines)
	assert.Zero(t, response.Totals.Total)
}

func TestDeleteFine_NotFound(t *testing.T) {
	// Given: Setup test environment
	fineHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.DELETE("/api/v1/fines/:id", fineHandler.DeleteFine)

	// When: Deleting a fine that does not exist
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/fines/4242",
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "FINE-001", errorResponse.Code)
}

func TestListByMember_Totals(t *testing.T) {
	// Given: Setup test environment
	fineHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/fines", fineHandler.AddFine)
	router.POST("/api/v1/fines/:id/paid", fineHandler.MarkPaid)
	router.GET("/api/v1/members/:id/fines", fineHandler.ListByMember)

	m := seedMember(t, db, "Ngozi Okafor")

	// Given: Two fines, one of which gets paid
	first := addFine(t, router, m.ID, 2000, "Late to meeting")
	addFine(t, router, m.ID, 3000, "Missed general meeting")

	paidRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/fines/%d/paid", first.ID),
	})
	require.Equal(t, http.StatusOK, paidRecorder.Code)

	// When: Listing the member's fines
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/members/%d/fines", m.ID),
	})

	// Then: Totals split into paid and unpaid
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response fines.ListFinesResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Len(t, response.Fines, 2)
	assert.Equal(t, int64(5000), response.Totals.Total)
	assert.Equal(t, int64(2000), response.Totals.Paid)
	assert.Equal(t, int64(3000), response.Totals.Unpaid)
}
