package services

import (
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/platform/config"
	"github.com/wargakita/wargakita_backend/internal/platform/genai"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notification first since most other services fan out through it.
	container.Notification = NewNotificationService(repos.NotificationRepo, repos.UserRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Resident = NewResidentService(repos.ResidentRepo, container.User)

	container.Billing = NewBillingService(repos.DueRepo, repos.ResidentRepo, cfg.DuesTariff, cfg.DuesCategory)
	container.Payment = NewPaymentService(repos.DueRepo, repos.ResidentRepo, container.Notification, cfg.DuesTariff, cfg.DuesCategory)
	container.Verification = NewVerificationService(repos.DueRepo, repos.ResidentRepo, container.Notification)
	container.DueQuery = NewDueQueryService(repos.DueRepo)

	container.Announcement = NewAnnouncementService(repos.AnnouncementRepo, container.Notification)
	container.Aid = NewAidService(repos.AidRepo, repos.ResidentRepo, container.Notification)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	container.Assist = NewAssistService(genai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel), repos.ResidentRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
