package router

import (
	"github.com/adeyemik/union-register/go-api-server/internal/auth"
	"github.com/adeyemik/union-register/go-api-server/internal/config"
	"github.com/adeyemik/union-register/go-api-server/internal/dues"
	"github.com/adeyemik/union-register/go-api-server/internal/fines"
	"github.com/adeyemik/union-register/go-api-server/internal/levy"
	"github.com/adeyemik/union-register/go-api-server/internal/member"
	"github.com/adeyemik/union-register/go-api-server/internal/meta"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/database"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repositories
	memberRepository := member.NewMemberRepository()
	duesRepository := dues.NewDuesRepository()
	levyRepository := levy.NewLevyRepository()
	fineRepository := fines.NewFineRepository()

	// services
	authService := auth.NewAuthService(db.DB, memberRepository)
	memberService := member.NewMemberService(db.DB, memberRepository)
	duesService := dues.NewDuesService(db.DB, cfg, duesRepository, memberRepository)
	levyService := levy.NewLevyService(db.DB, cfg, levyRepository, memberRepository)
	fineService := fines.NewFineService(db.DB, fineRepository, memberRepository)

	// handlers
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	duesHandler := dues.NewDuesHandler(duesService)
	levyHandler := levy.NewLevyHandler(levyService)
	fineHandler := fines.NewFineHandler(fineService)

	// The verify endpoints are the brute-force surface: throttle per IP
	verifyLimiter := middleware.NewVerifyRateLimiter(
		cfg.Register.VerifyRatePerMin,
		cfg.Register.VerifyBurst,
	)

	authV1 := router.Group("/api/v1/auth")
	authV1.Use(verifyLimiter.Middleware())
	{
		authV1.POST("/verify", authHandler.VerifyMember)
		authV1.POST("/verify-admin", authHandler.VerifyAdmin)
	}

	// Public read paths: the member-facing screens (directory, dues board)
	publicV1 := router.Group("/api/v1")
	{
		publicV1.GET("/members", memberHandler.ListMembers)
		publicV1.GET("/members/:id/dues", duesHandler.ListByMember)
		publicV1.GET("/dues", duesHandler.ListAll)
		publicV1.GET("/dues/summary", duesHandler.YearSummary)
		publicV1.GET("/dues/paid-members", duesHandler.PaidMembers)
	}

	// Admin paths: every register mutation plus the code-bearing listings
	adminV1 := router.Group("/api/v1")
	adminV1.Use(middleware.AdminOnly(authService))
	{
		adminV1.POST("/members", memberHandler.AddMember)
		adminV1.GET("/admin/members", memberHandler.ListMembersAdmin)

		adminV1.POST("/dues/mark-paid", duesHandler.MarkPaid)
		adminV1.POST("/dues/:id/unpaid", duesHandler.MarkUnpaid)

		adminV1.POST("/levy", levyHandler.AddPayment)
		adminV1.GET("/members/:id/levy", levyHandler.ListByMember)
		adminV1.PUT("/levy/:id", levyHandler.UpdatePayment)
		adminV1.DELETE("/levy/:id", levyHandler.DeletePayment)

		adminV1.POST("/fines", fineHandler.AddFine)
		adminV1.GET("/members/:id/fines", fineHandler.ListByMember)
		adminV1.PATCH("/fines/:id", fineHandler.UpdateFine)
		adminV1.POST("/fines/:id/paid", fineHandler.MarkPaid)
		adminV1.POST("/fines/:id/unpaid", fineHandler.MarkUnpaid)
		adminV1.DELETE("/fines/:id", fineHandler.DeleteFine)
	}
}
