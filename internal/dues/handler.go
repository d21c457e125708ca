package dues

import (
	"net/http"
	"strconv"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type DuesHandler struct {
	duesService *DuesService
}

func NewDuesHandler(duesService *DuesService) *DuesHandler {
	return &DuesHandler{
		duesService: duesService,
	}
}

func (h *DuesHandler) MarkPaid(c *gin.Context) {
	var request MarkPaidRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.duesService.MarkPaid(c.Request.Context(), &request)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DuesHandler) MarkUnpaid(c *gin.Context) {
	var request DuesIDRequest
	if !handler.BindURI(c, &request) {
		return
	}

	response, err := h.duesService.MarkUnpaid(c.Request.Context(), request.ID)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DuesHandler) ListByMember(c *gin.Context) {
	memberID, ok := parseMemberID(c)
	if !ok {
		return
	}

	response, err := h.duesService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DuesHandler) ListAll(c *gin.Context) {
	year, ok := parseQueryInt(c, "year")
	if !ok {
		return
	}
	month, ok := parseQueryInt(c, "month")
	if !ok {
		return
	}
	if month != 0 && year == 0 {
		resp := sharedError.ValidationFailed
		resp.Message = "Query parameter 'month' requires 'year'."
		c.JSON(resp.Status, resp)
		return
	}

	response, err := h.duesService.ListAll(c.Request.Context(), year, month)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DuesHandler) PaidMembers(c *gin.Context) {
	response, err := h.duesService.MembersWithPaidDues(c.Request.Context())
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DuesHandler) YearSummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		resp := sharedError.ValidationFailed
		resp.Message = "Query parameter 'year' is required."
		c.JSON(resp.Status, resp)
		return
	}

	response, err := h.duesService.YearSummary(c.Request.Context(), year)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// parseQueryInt reads an optional positive-integer query parameter.
// Absent means 0; a present but malformed value is rejected rather than
// silently widening the listing.
func parseQueryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		resp := sharedError.ValidationFailed
		resp.Message = "Query parameter '" + name + "' must be a positive integer."
		c.JSON(resp.Status, resp)
		return 0, false
	}
	return value, true
}

// parseMemberID reads the :id path parameter for member-scoped listings.
func parseMemberID(c *gin.Context) (uint32, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		resp := sharedError.ValidationFailed
		resp.Message = "Invalid member id."
		c.JSON(resp.Status, resp)
		return 0, false
	}
	return uint32(id), true
}
