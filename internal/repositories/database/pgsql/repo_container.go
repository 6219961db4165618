package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ResidentRepo:     newPgxResidentRepository(dbPool),
		DueRepo:          newPgxDueRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		AnnouncementRepo: newPgxAnnouncementRepository(dbPool),
		AidRepo:          newPgxAidRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
	}
}
