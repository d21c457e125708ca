package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/adeyemik/union-register/go-api-server/internal/model"
	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/logger"

	"github.com/gin-gonic/gin"
)

const (
	AccessCodeHeader = "X-Access-Code"

	// Context keys for the authenticated admin
	AdminMemberIDKey   = "admin_member_id"
	AdminMemberNameKey = "admin_member_name"
)

// Access-code error constants (errInfo)
const (
	missingAccessCode = "MISSING_ACCESS_CODE"
	invalidAdminCode  = "INVALID_ADMIN_CODE"
)

// Domain errors
var (
	ErrMissingAccessCode = sharedError.NewDomainError(missingAccessCode)
	ErrInvalidAdminCode  = sharedError.NewDomainError(invalidAdminCode)
)

// Register access-code error responses
func init() {
	sharedError.RegisterDomainErrorResponse(missingAccessCode, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-002",
		Message: "Admin access code required.",
	})

	sharedError.RegisterDomainErrorResponse(invalidAdminCode, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-002",
		Message: "Invalid access code.",
	})
}

// AdminVerifier resolves a submitted access code to an admin member.
// Implemented by the auth service; declared here so the middleware does not
// depend on the auth package.
type AdminVerifier interface {
	AdminByCode(ctx context.Context, code string) (*model.Member, error)
}

// AdminOnly guards a route group with access-code authentication: the
// X-Access-Code header must belong to a member whose admin flag is set.
// A failed lookup is indistinguishable from an unknown code.
func AdminOnly(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path

		code := strings.TrimSpace(c.GetHeader(AccessCodeHeader))
		if code == "" {
			slog.Warn("admin access denied",
				"step", "extract_code",
				"client_ip", clientIP,
				"method", method,
				"path", path,
			)
			respondAccessDenied(c, ErrMissingAccessCode)
			return
		}

		admin, err := verifier.AdminByCode(c.Request.Context(), code)
		if err != nil {
			slog.Warn("admin access denied",
				"step", "verify_code",
				"code", logger.MaskCode(code),
				"client_ip", clientIP,
				"method", method,
				"path", path,
			)
			respondAccessDenied(c, ErrInvalidAdminCode)
			return
		}

		c.Set(AdminMemberIDKey, admin.ID)
		c.Set(AdminMemberNameKey, admin.Name)
		c.Next()
	}
}

func respondAccessDenied(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "Authentication failed.",
		})
	}
	c.Abort()
}

// GetAdminMemberID returns the authenticated admin's member id, if any.
func GetAdminMemberID(c *gin.Context) (uint32, bool) {
	value, exists := c.Get(AdminMemberIDKey)
	if !exists {
		return 0, false
	}

	id, ok := value.(uint32)
	return id, ok
}
