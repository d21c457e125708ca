package auth

import (
	"net/http"

	"github.com/adeyemik/union-register/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) VerifyMember(c *gin.Context) {
	var request VerifyRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.VerifyMember(c.Request.Context(), &request)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (a *AuthHandler) VerifyAdmin(c *gin.Context) {
	var request VerifyRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.VerifyAdmin(c.Request.Context(), &request)
	if err != nil {
		handler.RespondService(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
