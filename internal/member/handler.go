package member

import (
	"net/http"

	"github.com/adeyemik/union-register/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) AddMember(c *gin.Context) {
	var request AddMemberRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.AddMember(c.Request.Context(), &request)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	response, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) ListMembersAdmin(c *gin.Context) {
	response, err := h.memberService.ListMembersAdmin(c.Request.Context())
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
