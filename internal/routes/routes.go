package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	bookingDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/booking"
	contentDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	paymentDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/payment"
	userDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/user"
	"github.com/BruksfildServices01/zaban-academy/internal/handlers"
	"github.com/BruksfildServices01/zaban-academy/internal/metrics"
	"github.com/BruksfildServices01/zaban-academy/internal/middleware"
	"github.com/BruksfildServices01/zaban-academy/internal/notify"
	ucBooking "github.com/BruksfildServices01/zaban-academy/internal/usecase/booking"
	ucContent "github.com/BruksfildServices01/zaban-academy/internal/usecase/content"
	ucPayment "github.com/BruksfildServices01/zaban-academy/internal/usecase/payment"
	ucSlot "github.com/BruksfildServices01/zaban-academy/internal/usecase/slot"
	ucUser "github.com/BruksfildServices01/zaban-academy/internal/usecase/user"
)

// Repos groups the persistence ports; production wires the gorm
// implementations, tests the in-memory ones.
type Repos struct {
	Bookings bookingDomain.Repository
	Payments paymentDomain.Repository
	Contents contentDomain.Repository
	Users    userDomain.Repository
}

type Deps struct {
	Repos

	Log            *zap.Logger
	JWT            *auth.JWTManager
	Hasher         auth.PasswordHasher
	Location       *time.Location
	CORSOrigins    []string
	RequestTimeout time.Duration
	OperatorPhone  string
	AdminPhones    []string

	Notifier *notify.Dispatcher
	Audit    *audit.Dispatcher

	// Store and Cache are optional; leave them nil (untyped) when storage
	// or redis is not configured.
	Store contentDomain.ObjectStore
	Cache contentDomain.Cache
	NewKey func(fileName string) string

	// DB backs the audit log listing; Ping backs /health.
	DB   *gorm.DB
	Ping func(ctx context.Context) error
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		gin.CustomRecovery(func(c *gin.Context, rec any) {
			d.Log.Error("panic recovered", zap.Any("panic", rec), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatus(500)
		}),
		middleware.CORSMiddleware(d.CORSOrigins),
		middleware.Metrics(),
		middleware.Timeout(d.RequestTimeout),
		middleware.Authenticate(d.JWT),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	promoteUC := ucUser.NewPromoteKnownAdmins(d.Users, d.AdminPhones, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucUser.NewRegister(d.Users, d.Hasher, d.JWT),
		ucUser.NewLogin(d.Users, d.Hasher, d.JWT),
		ucUser.NewGetCurrentUser(d.Users),
		ucUser.NewUpdateProfile(d.Users),
	)

	userHandler := handlers.NewUserHandler(promoteUC)

	slotHandler := handlers.NewSlotHandler(
		ucSlot.NewListAvailableSlots(d.Bookings),
		ucSlot.NewListSlots(d.Bookings),
		ucSlot.NewCreateSlot(d.Bookings, d.Audit, d.Location),
		ucSlot.NewDeleteSlot(d.Bookings, d.Audit),
	)

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewBookSlot(d.Bookings, d.Notifier, d.Audit, d.OperatorPhone, d.Location),
		ucBooking.NewListBookings(d.Bookings),
		ucBooking.NewListMyBookings(d.Bookings),
	)

	contentHandler := handlers.NewContentHandler(handlers.ContentUseCases{
		List:        ucContent.NewListContent(d.Contents, d.Cache),
		Get:         ucContent.NewGetContent(d.Contents),
		Create:      ucContent.NewCreateContent(d.Contents, d.Cache, d.Audit),
		Update:      ucContent.NewUpdateContent(d.Contents, d.Cache, d.Audit),
		Delete:      ucContent.NewDeleteContent(d.Contents, d.Cache, d.Audit),
		UploadLink:  ucContent.NewIssueUploadLink(d.Store, d.NewKey),
		StreamLink:  ucContent.NewIssueStreamLink(d.Contents, d.Store, d.Cache),
		MyPurchases: ucContent.NewListMyPurchases(d.Contents),
	})

	paymentHandler := handlers.NewPaymentHandler(
		ucPayment.NewCreatePayment(d.Payments, d.Audit),
		ucPayment.NewListPayments(d.Payments),
		ucPayment.NewListMyPayments(d.Payments),
		ucPayment.NewUpdatePaymentStatus(d.Payments, d.Audit),
		ucPayment.NewExportPayments(d.Payments),
	)

	healthHandler := handlers.NewHealthHandler(d.Ping)

	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// AUTH
	// ======================================================
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/user", authHandler.Me)
	r.PATCH("/user", requireAuth, authHandler.UpdateMe)
	r.POST("/users", requireAuth, userHandler.Action)

	// ======================================================
	// SLOTS & BOOKINGS
	// ======================================================
	r.GET("/slots", slotHandler.ListAvailable)
	r.GET("/slots/all", requireAdmin, slotHandler.ListAll)
	r.POST("/slots", requireAdmin, slotHandler.Create)
	r.DELETE("/slots", requireAdmin, slotHandler.Delete)

	r.POST("/book", bookingHandler.Book)
	r.GET("/bookings", requireAdmin, bookingHandler.List)
	r.GET("/bookings/me", requireAuth, bookingHandler.ListMine)

	// ======================================================
	// CONTENT
	// ======================================================
	content := r.Group("/content")
	{
		content.GET("", contentHandler.List)
		content.GET("/upload-link", requireAdmin, contentHandler.UploadLink)
		content.GET("/:id", contentHandler.Get)
		content.GET("/:id/stream", contentHandler.Stream)
		content.POST("", requireAdmin, contentHandler.Create)
		content.PATCH("/:id", requireAdmin, contentHandler.Update)
		content.DELETE("/:id", requireAdmin, contentHandler.Delete)
	}

	// ======================================================
	// PAYMENTS
	// ======================================================
	payments := r.Group("/payments", requireAuth)
	{
		payments.GET("", requireAdmin, paymentHandler.List)
		payments.GET("/me", paymentHandler.ListMine)
		payments.GET("/export", requireAdmin, paymentHandler.Export)
		payments.POST("", paymentHandler.Create)
		payments.PATCH("", requireAdmin, paymentHandler.UpdateStatus)
	}
	r.GET("/purchases/me", requireAuth, contentHandler.MyPurchases)

	// ======================================================
	// BACK OFFICE
	// ======================================================
	if d.DB != nil {
		auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Location)
		r.GET("/audit-logs", requireAdmin, auditLogsHandler.List)
	}
}
