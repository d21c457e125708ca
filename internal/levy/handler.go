package levy

import (
	"net/http"
	"strconv"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type LevyHandler struct {
	levyService *LevyService
}

func NewLevyHandler(levyService *LevyService) *LevyHandler {
	return &LevyHandler{
		levyService: levyService,
	}
}

func (h *LevyHandler) AddPayment(c *gin.Context) {
	var request AddPaymentRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.levyService.AddPayment(c.Request.Context(), &request)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *LevyHandler) UpdatePayment(c *gin.Context) {
	var uri PaymentIDRequest
	if !handler.BindURI(c, &uri) {
		return
	}

	var request UpdatePaymentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.levyService.UpdatePayment(c.Request.Context(), uri.ID, &request)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *LevyHandler) DeletePayment(c *gin.Context) {
	var uri PaymentIDRequest
	if !handler.BindURI(c, &uri) {
		return
	}

	if err := h.levyService.DeletePayment(c.Request.Context(), uri.ID); err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *LevyHandler) ListByMember(c *gin.Context) {
	memberID, ok := parseMemberID(c)
	if !ok {
		return
	}

	// Optional ?year= filter
	year, _ := strconv.Atoi(c.Query("year"))

	response, err := h.levyService.ListByMember(c.Request.Context(), memberID, year)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

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
