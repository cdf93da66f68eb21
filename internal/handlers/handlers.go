package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"hostelhub/internal/config"
	"hostelhub/internal/mail"
	"hostelhub/internal/middleware"
	"hostelhub/internal/models"
	"hostelhub/internal/payment"
	"hostelhub/internal/repository"
	"hostelhub/internal/service"
	"hostelhub/internal/storage"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	db          *pgxpool.Pool
	cache       *redis.Client
	users       *repository.UserRepository
	auth        *service.AuthService
	rooms       *service.RoomService
	bookings    *service.BookingService
	payments    *service.PaymentService
	maintenance *service.MaintenanceService
	reports     *service.ReportService
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	mailer := mail.NewLogMailer(log)
	provider := payment.NewHTTPProvider(
		cfg.Payment.ProviderURL,
		cfg.Payment.ClientID,
		cfg.Payment.ClientSecret,
	)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		db:          db,
		cache:       cache,
		users:       userRepo,
		auth:        service.NewAuthService(userRepo, bookingRepo, cache, mailer, cfg, log),
		rooms:       service.NewRoomService(roomRepo, store, log),
		bookings:    service.NewBookingService(bookingRepo, roomRepo, userRepo, log),
		payments:    service.NewPaymentService(bookingRepo, userRepo, provider, cache, cfg.Payment.Currency, log),
		maintenance: service.NewMaintenanceService(maintenanceRepo, userRepo, log),
		reports:     service.NewReportService(expenseRepo, bookingRepo, store, log),
	}
}

// Bookings exposes the booking service for background jobs.
func (h HandlerSet) Bookings() *service.BookingService {
	return h.bookings
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", h.RegisterUser)
	auth.POST("/login", h.Login)
	auth.POST("/forgot-password", h.ForgotPassword)
	auth.POST("/reset-password/:id/:resetToken", h.ResetPassword)

	room := v1.Group("/room")
	room.GET("/available-rooms", h.AvailableRooms)
	room.GET("/:roomNumber", h.RoomByNumber)
	room.POST("/create",
		middleware.Auth(h.cfg, h.users),
		middleware.RequireRoles(models.UserRoleAdmin),
		h.CreateRoom,
	)

	booking := v1.Group("/booking")
	booking.Use(
		middleware.Auth(h.cfg, h.users),
		middleware.RequireRoles(models.UserRoleResident),
	)
	booking.POST("/create", h.CreateBooking)
	booking.PATCH("/cancel/:id", h.CancelBooking)

	resident := v1.Group("/resident")
	resident.Use(
		middleware.Auth(h.cfg, h.users),
		middleware.RequireRoles(models.UserRoleResident),
	)
	resident.GET("/get-booking", h.ResidentBooking)
	resident.GET("/profile", h.Profile)
	resident.PUT("/profile/edit", h.EditProfile)

	pay := v1.Group("/payment")
	pay.Use(
		middleware.Auth(h.cfg, h.users),
		middleware.RequireRoles(models.UserRoleResident),
	)
	pay.POST("/create-order", h.CreateOrder)
	pay.POST("/capture-payment/:orderID", h.CapturePayment)

	maintenance := v1.Group("/maintenance-request")
	maintenance.Use(middleware.Auth(h.cfg, h.users))
	maintenance.POST("/create",
		middleware.RequireRoles(models.UserRoleResident),
		h.CreateMaintenanceRequest,
	)
	maintenance.GET("/get-requests/staff",
		middleware.RequireRoles(models.UserRoleStaff),
		h.StaffRequests,
	)
	maintenance.PATCH("/resolve/:id",
		middleware.RequireRoles(models.UserRoleStaff),
		h.ResolveRequest,
	)
	maintenance.GET("/pending",
		middleware.RequireRoles(models.UserRoleAdmin),
		h.PendingRequests,
	)
	maintenance.PATCH("/assign-staff/:requestId",
		middleware.RequireRoles(models.UserRoleAdmin),
		h.AssignStaff,
	)

	admin := v1.Group("")
	admin.Use(
		middleware.Auth(h.cfg, h.users),
		middleware.RequireRoles(models.UserRoleAdmin),
	)
	admin.GET("/staff/available", h.AvailableStaff)
	admin.POST("/expense/create", h.CreateExpense)
	admin.GET("/expense/category", h.ExpensesByCategory)
	admin.GET("/revenue/category", h.RevenueByCategory)
	admin.GET("/download-report/:reportType", h.DownloadReport)
}

func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("current_user")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_user"})
		return models.User{}, false
	}
	return user, true
}
