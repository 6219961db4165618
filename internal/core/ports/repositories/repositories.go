package repositories

// RepositoryProvider bundles the concrete repositories for dependency injection.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	ResidentRepo     ResidentRepositoryFacade
	DueRepo          DueRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	AnnouncementRepo AnnouncementRepositoryFacade
	AidRepo          AidRepositoryFacade
	ReportingRepo    ReportingRepositoryFacade
}
