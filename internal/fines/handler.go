package fines

import (
	"net/http"
	"strconv"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type FineHandler struct {
	fineService *FineService
}

func NewFineHandler(fineService *FineService) *FineHandler {
	return &FineHandler{
		fineService: fineService,
	}
}

func (h *FineHandler) AddFine(c *gin.Context) {
	var request AddFineRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.fineService.AddFine(c.Request.Context(), &request)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *FineHandler) UpdateFine(c *gin.Context) {
	var uri FineIDRequest
	if !handler.BindURI(c, &uri) {
		return
	}

	var request UpdateFineRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.fineService.UpdateFine(c.Request.Context(), uri.ID, &request)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *FineHandler) MarkPaid(c *gin.Context) {
	var uri FineIDRequest
	if !handler.BindURI(c, &uri) {
		return
	}

	response, err := h.fineService.MarkPaid(c.Request.Context(), uri.ID)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *FineHandler) MarkUnpaid(c *gin.Context) {
	var uri FineIDRequest
	if !handler.BindURI(c, &uri) {
		return
	}

	response, err := h.fineService.MarkUnpaid(c.Request.Context(), uri.ID)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *FineHandler) DeleteFine(c *gin.Context) {
	var uri FineIDRequest
	if !handler.BindURI(c, &uri) {
		return
	}

	if err := h.fineService.DeleteFine(c.Request.Context(), uri.ID); err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *FineHandler) ListByMember(c *gin.Context) {
	memberID, ok := parseMemberID(c)
	if !ok {
		return
	}

	response, err := h.fineService.ListByMember(c.Request.Context(), memberID)
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
