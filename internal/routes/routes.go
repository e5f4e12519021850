package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	"github.com/BruksfildServices01/salon-agenda/internal/config"
	domainAppointment "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	domainBackup "github.com/BruksfildServices01/salon-agenda/internal/domain/backup"
	domainClient "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/salon-agenda/internal/infra/storage"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-agenda/internal/usecase/appointment"
	ucAuditLog "github.com/BruksfildServices01/salon-agenda/internal/usecase/auditlog"
	ucAuth "github.com/BruksfildServices01/salon-agenda/internal/usecase/auth"
	ucBackup "github.com/BruksfildServices01/salon-agenda/internal/usecase/backup"
	ucClient "github.com/BruksfildServices01/salon-agenda/internal/usecase/client"
	ucSettings "github.com/BruksfildServices01/salon-agenda/internal/usecase/settings"
	"github.com/BruksfildServices01/salon-agenda/internal/validators"
)

// AgendaCache is the agenda cache as the router needs it: read through by
// the agenda, invalidated by writes and flushed by restores.
type AgendaCache interface {
	domainAppointment.AgendaCache
	Flush(ctx context.Context)
}

// Deps are the process-wide singletons built in main. Cache, Store and
// RateCounter are optional.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *slog.Logger
	Audit  *audit.Dispatcher

	Cache       AgendaCache
	Store       *storage.S3Store
	RateCounter middleware.Counter

	// CheckEmailDomain resolves account email domains on registration.
	CheckEmailDomain validators.DomainChecker

	Location *time.Location
	Now      func() time.Time
}

const loginRateWindow = time.Minute

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	settingsRepo := infraRepo.NewSettingsGormRepository(d.DB)
	backupRepo := infraRepo.NewBackupGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	auditRepo := infraRepo.NewAuditLogGormRepository(d.DB)

	// Optional collaborators stay untyped nil when absent so use cases
	// can detect them.
	var (
		agendaCache domainAppointment.AgendaCache
		flusher     ucBackup.CacheFlusher
		renames     ucClient.AgendaFlusher
		photos      domainClient.PhotoStore
		snapshots   domainBackup.Store
	)
	if d.Cache != nil {
		agendaCache = d.Cache
		flusher = d.Cache
		renames = d.Cache
	}
	if d.Store != nil {
		photos = d.Store
		snapshots = d.Store
	}

	now := d.Now
	if now == nil {
		now = time.Now
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucAppointment.NewCreateBooking(appointmentRepo, settingsRepo, agendaCache, d.Audit, now)
	validateBookingUC := ucAppointment.NewValidateBooking(appointmentRepo, settingsRepo)
	changeStatusUC := ucAppointment.NewChangeStatus(appointmentRepo, settingsRepo, agendaCache, d.Audit, now)
	changeBookingStatusUC := ucAppointment.NewChangeBookingStatus(appointmentRepo, settingsRepo, agendaCache, d.Audit, now)
	cancelBookingUC := ucAppointment.NewCancelBooking(changeBookingStatusUC)
	getBookingUC := ucAppointment.NewGetBooking(appointmentRepo)
	getAgendaUC := ucAppointment.NewGetAgenda(appointmentRepo, settingsRepo, agendaCache)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listBetweenUC := ucAppointment.NewListAppointmentsBetween(appointmentRepo)
	dashboardUC := ucAppointment.NewDashboard(appointmentRepo, now)

	tokens := ucAuth.NewTokens(d.Config.JWTSecret, d.Config.JWTTTL, nil)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAuth.NewRegister(userRepo, tokens, d.CheckEmailDomain, d.Audit),
		ucAuth.NewLogin(userRepo, tokens),
	)
	meHandler := handlers.NewMeHandler(ucAuth.NewGetUser(userRepo))

	agendaHandler := handlers.NewAgendaHandler(getAgendaUC, dashboardUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		validateBookingUC,
		changeStatusUC,
		listByDateUC,
		listBetweenUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		getBookingUC,
		changeBookingStatusUC,
		cancelBookingUC,
	)

	clientHandler := handlers.NewClientHandler(
		ucClient.NewListClients(clientRepo),
		ucClient.NewGetClient(clientRepo),
		ucClient.NewCreateClient(clientRepo, d.Audit),
		ucClient.NewUpdateClient(clientRepo, renames, d.Audit),
		ucClient.NewImportClients(clientRepo, d.Audit),
		ucClient.NewClientHistory(clientRepo, now),
		ucClient.NewUploadPhoto(clientRepo, photos, d.Audit),
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(
		ucSettings.NewGetWorkHours(settingsRepo),
		ucSettings.NewUpdateWorkHours(settingsRepo, d.Audit),
	)

	backupHandler := handlers.NewBackupHandler(
		ucBackup.NewCreateBackup(backupRepo, snapshots, d.Audit, now),
		ucBackup.NewListBackups(snapshots),
		ucBackup.NewRestoreBackup(backupRepo, snapshots, flusher, d.Audit),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(
		ucAuditLog.NewListAuditLogs(auditRepo, d.Location),
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		loginLimit := middleware.RateLimit(d.RateCounter, "ratelimit:login", d.Config.LoginRateLimit, loginRateWindow, d.Log)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", loginLimit, authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/agenda", agendaHandler.Get)
			secured.GET("/dashboard", agendaHandler.Dashboard)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments/validate", appointmentHandler.Validate)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)

			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/status", bookingHandler.ChangeStatus)
			secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.POST("/clients/import", clientHandler.Import)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.GET("/clients/:id/stats", clientHandler.Stats)
			secured.GET("/clients/:id/next-appointment", clientHandler.NextAppointment)
			secured.GET("/clients/:id/notes", clientHandler.Notes)
			secured.PUT("/clients/:id/photo", clientHandler.UploadPhoto)

			secured.GET("/settings/work-hours", workingHoursHandler.Get)

			// ------------------------------
			// OWNER ONLY
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRole(models.RoleOwner))
			{
				owner.PUT("/settings/work-hours", workingHoursHandler.Update)

				owner.POST("/users", authHandler.CreateStaff)

				owner.POST("/backups", backupHandler.Create)
				owner.GET("/backups", backupHandler.List)
				owner.POST("/backups/restore", backupHandler.Restore)

				owner.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
