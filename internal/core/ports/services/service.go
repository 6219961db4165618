package services

// ServiceContainer bundles the application services for dependency injection.
type ServiceContainer struct {
	User         UserSvcFacade
	Resident     ResidentSvcFacade
	Billing      BillingSvcFacade
	Payment      PaymentSvcFacade
	Verification VerificationSvcFacade
	DueQuery     DueQuerySvcFacade
	Notification NotificationSvcFacade
	Announcement AnnouncementSvcFacade
	Aid          AidSvcFacade
	Reporting    ReportingSvcFacade
	Assist       AssistSvcFacade

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
