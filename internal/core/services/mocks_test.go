package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

// Shared hand-rolled mocks for the service suites in this package.

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsersByRoles(ctx context.Context, roles []domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, roles)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock ResidentRepository ---

type MockResidentRepository struct {
	mock.Mock
}

func (m *MockResidentRepository) FindResidentByID(ctx context.Context, residentID string) (*domain.Resident, error) {
	args := m.Called(ctx, residentID)
	var resident *domain.Resident
	if args.Get(0) != nil {
		resident = args.Get(0).(*domain.Resident)
	}
	return resident, args.Error(1)
}

func (m *MockResidentRepository) FindResidentByNIK(ctx context.Context, nik string) (*domain.Resident, error) {
	args := m.Called(ctx, nik)
	var resident *domain.Resident
	if args.Get(0) != nil {
		resident = args.Get(0).(*domain.Resident)
	}
	return resident, args.Error(1)
}

func (m *MockResidentRepository) FindResidentByUserID(ctx context.Context, userID string) (*domain.Resident, error) {
	args := m.Called(ctx, userID)
	var resident *domain.Resident
	if args.Get(0) != nil {
		resident = args.Get(0).(*domain.Resident)
	}
	return resident, args.Error(1)
}

func (m *MockResidentRepository) FindResidents(ctx context.Context, limit, offset int) ([]domain.Resident, error) {
	args := m.Called(ctx, limit, offset)
	var residents []domain.Resident
	if args.Get(0) != nil {
		residents = args.Get(0).([]domain.Resident)
	}
	return residents, args.Error(1)
}

func (m *MockResidentRepository) FindResidentsByStatus(ctx context.Context, status domain.ResidentStatus) ([]domain.Resident, error) {
	args := m.Called(ctx, status)
	var residents []domain.Resident
	if args.Get(0) != nil {
		residents = args.Get(0).([]domain.Resident)
	}
	return residents, args.Error(1)
}

func (m *MockResidentRepository) SaveResident(ctx context.Context, resident domain.Resident) error {
	args := m.Called(ctx, resident)
	return args.Error(0)
}

func (m *MockResidentRepository) UpdateResident(ctx context.Context, resident domain.Resident) error {
	args := m.Called(ctx, resident)
	return args.Error(0)
}

func (m *MockResidentRepository) MarkResidentDeleted(ctx context.Context, residentID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, residentID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockResidentRepository) SavePopulationEvent(ctx context.Context, event domain.PopulationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockResidentRepository) FindEventsByResident(ctx context.Context, residentID string) ([]domain.PopulationEvent, error) {
	args := m.Called(ctx, residentID)
	var events []domain.PopulationEvent
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.PopulationEvent)
	}
	return events, args.Error(1)
}

// --- Mock DueRepository ---

type MockDueRepository struct {
	mock.Mock
}

func (m *MockDueRepository) FindDueByID(ctx context.Context, dueID string) (*domain.DueRecord, error) {
	args := m.Called(ctx, dueID)
	var due *domain.DueRecord
	if args.Get(0) != nil {
		due = args.Get(0).(*domain.DueRecord)
	}
	return due, args.Error(1)
}

func (m *MockDueRepository) FindDueForPeriod(ctx context.Context, residentID, category string, period domain.Period) (*domain.DueRecord, error) {
	args := m.Called(ctx, residentID, category, period)
	var due *domain.DueRecord
	if args.Get(0) != nil {
		due = args.Get(0).(*domain.DueRecord)
	}
	return due, args.Error(1)
}

func (m *MockDueRepository) FindBilledResidentIDs(ctx context.Context, category string, period domain.Period) (map[string]struct{}, error) {
	args := m.Called(ctx, category, period)
	var ids map[string]struct{}
	if args.Get(0) != nil {
		ids = args.Get(0).(map[string]struct{})
	}
	return ids, args.Error(1)
}

func (m *MockDueRepository) FindDues(ctx context.Context, filter portsrepo.DueListFilter) ([]domain.DueRecord, error) {
	args := m.Called(ctx, filter)
	var dues []domain.DueRecord
	if args.Get(0) != nil {
		dues = args.Get(0).([]domain.DueRecord)
	}
	return dues, args.Error(1)
}

func (m *MockDueRepository) SaveDue(ctx context.Context, due domain.DueRecord) error {
	args := m.Called(ctx, due)
	return args.Error(0)
}

func (m *MockDueRepository) SaveDues(ctx context.Context, dues []domain.DueRecord) error {
	args := m.Called(ctx, dues)
	return args.Error(0)
}

func (m *MockDueRepository) UpdateDue(ctx context.Context, due domain.DueRecord) error {
	args := m.Called(ctx, due)
	return args.Error(0)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- Mock AnnouncementRepository ---

type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) SaveAnnouncement(ctx context.Context, announcement domain.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) FindAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	args := m.Called(ctx, announcementID)
	var announcement *domain.Announcement
	if args.Get(0) != nil {
		announcement = args.Get(0).(*domain.Announcement)
	}
	return announcement, args.Error(1)
}

func (m *MockAnnouncementRepository) FindAnnouncements(ctx context.Context, limit int, offset int) ([]domain.Announcement, error) {
	args := m.Called(ctx, limit, offset)
	var announcements []domain.Announcement
	if args.Get(0) != nil {
		announcements = args.Get(0).([]domain.Announcement)
	}
	return announcements, args.Error(1)
}

func (m *MockAnnouncementRepository) UpdateAnnouncement(ctx context.Context, announcement domain.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) MarkAnnouncementDeleted(ctx context.Context, announcementID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, announcementID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock AidRepository ---

type MockAidRepository struct {
	mock.Mock
}

func (m *MockAidRepository) SaveAidDistribution(ctx context.Context, aid domain.AidDistribution) error {
	args := m.Called(ctx, aid)
	return args.Error(0)
}

func (m *MockAidRepository) FindAidDistributionByID(ctx context.Context, aidID string) (*domain.AidDistribution, error) {
	args := m.Called(ctx, aidID)
	var aid *domain.AidDistribution
	if args.Get(0) != nil {
		aid = args.Get(0).(*domain.AidDistribution)
	}
	return aid, args.Error(1)
}

func (m *MockAidRepository) FindAidDistributions(ctx context.Context, limit int, offset int) ([]domain.AidDistribution, error) {
	args := m.Called(ctx, limit, offset)
	var aids []domain.AidDistribution
	if args.Get(0) != nil {
		aids = args.Get(0).([]domain.AidDistribution)
	}
	return aids, args.Error(1)
}

func (m *MockAidRepository) FindAidDistributionsByResident(ctx context.Context, residentID string) ([]domain.AidDistribution, error) {
	args := m.Called(ctx, residentID)
	var aids []domain.AidDistribution
	if args.Get(0) != nil {
		aids = args.Get(0).([]domain.AidDistribution)
	}
	return aids, args.Error(1)
}

func (m *MockAidRepository) UpdateAidDistribution(ctx context.Context, aid domain.AidDistribution) error {
	args := m.Called(ctx, aid)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetCategoryTotals(ctx context.Context, from, to domain.Period) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, from, to)
	var totals []domain.CategoryTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.CategoryTotal)
	}
	return totals, args.Error(1)
}

// --- Mock NotificationService ---

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyRoles(ctx context.Context, roles []domain.UserRole, message string, category domain.NotificationCategory) (int, error) {
	args := m.Called(ctx, roles, message, category)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) NotifyUser(ctx context.Context, userID string, message string, category domain.NotificationCategory) error {
	args := m.Called(ctx, userID, message, category)
	return args.Error(0)
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID string, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}
