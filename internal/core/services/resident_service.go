package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
	"github.com/wargakita/wargakita_backend/internal/middleware"
)

// residentService manages resident records and population events.
type residentService struct {
	residentRepo portsrepo.ResidentRepositoryFacade
	userSvc      portssvc.UserSvcFacade
}

// NewResidentService creates a new ResidentService.
func NewResidentService(residentRepo portsrepo.ResidentRepositoryFacade, userSvc portssvc.UserSvcFacade) portssvc.ResidentSvcFacade {
	return &residentService{
		residentRepo: residentRepo,
		userSvc:      userSvc,
	}
}

var _ portssvc.ResidentSvcFacade = (*residentService)(nil)

// GetResidentByID retrieves a resident by ID.
func (s *residentService) GetResidentByID(ctx context.Context, residentID string) (*domain.Resident, error) {
	resident, err := s.residentRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find resident %s: %w", residentID, err)
	}
	return resident, nil
}

// GetResidentByUserID retrieves the resident linked to a login account.
func (s *residentService) GetResidentByUserID(ctx context.Context, userID string) (*domain.Resident, error) {
	resident, err := s.residentRepo.FindResidentByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find resident for user %s: %w", userID, err)
	}
	return resident, nil
}

// ListResidents retrieves a paginated list of residents.
func (s *residentService) ListResidents(ctx context.Context, limit, offset int) ([]domain.Resident, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	residents, err := s.residentRepo.FindResidents(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	return residents, nil
}

// ensureNIKAvailable rejects a second resident record with the same NIK.
func (s *residentService) ensureNIKAvailable(ctx context.Context, nik string) error {
	existing, err := s.residentRepo.FindResidentByNIK(ctx, nik)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check NIK availability: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: a resident with this NIK already exists", apperrors.ErrDuplicate)
	}
	return nil
}

// CreateResident creates a resident record with no login account (admin action).
func (s *residentService) CreateResident(ctx context.Context, req dto.CreateResidentRequest, creatorUserID string) (*domain.Resident, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ensureNIKAvailable(ctx, req.NIK); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resident := domain.Resident{
		ResidentID:  uuid.NewString(),
		NIK:         req.NIK,
		KKNumber:    req.KKNumber,
		Name:        req.Name,
		Address:     req.Address,
		HouseNumber: req.HouseNumber,
		Phone:       req.Phone,
		Status:      domain.ResidentActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.residentRepo.SaveResident(ctx, resident); err != nil {
		return nil, fmt.Errorf("failed to save resident: %w", err)
	}

	logger.Info("Resident created", slog.String("resident_id", resident.ResidentID))
	return &resident, nil
}

// RegisterResident performs self-registration: a WARGA login account plus its
// resident record, linked by UserID.
func (s *residentService) RegisterResident(ctx context.Context, req dto.RegisterResidentRequest) (*domain.Resident, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ensureNIKAvailable(ctx, req.NIK); err != nil {
		return nil, err
	}

	user, err := s.userSvc.CreateUser(ctx, dto.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     string(domain.RoleWarga),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resident := domain.Resident{
		ResidentID:  uuid.NewString(),
		UserID:      user.UserID,
		NIK:         req.NIK,
		KKNumber:    req.KKNumber,
		Name:        req.Name,
		Address:     req.Address,
		HouseNumber: req.HouseNumber,
		Phone:       req.Phone,
		Status:      domain.ResidentActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}
	if err := s.residentRepo.SaveResident(ctx, resident); err != nil {
		return nil, fmt.Errorf("failed to save resident for new account: %w", err)
	}

	logger.Info("Resident registered",
		slog.String("resident_id", resident.ResidentID),
		slog.String("user_id", user.UserID))
	return &resident, nil
}

// UpdateResident edits a resident. Empty request fields are left unchanged.
func (s *residentService) UpdateResident(ctx context.Context, residentID string, req dto.UpdateResidentRequest, updaterUserID string) (*domain.Resident, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resident, err := s.residentRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find resident %s: %w", residentID, err)
	}

	if req.Name != "" {
		resident.Name = req.Name
	}
	if req.Address != "" {
		resident.Address = req.Address
	}
	if req.HouseNumber != "" {
		resident.HouseNumber = req.HouseNumber
	}
	if req.Phone != "" {
		resident.Phone = req.Phone
	}
	if req.Status != "" {
		resident.Status = domain.ResidentStatus(req.Status)
	}
	resident.LastUpdatedAt = time.Now().UTC()
	resident.LastUpdatedBy = updaterUserID

	if err := s.residentRepo.UpdateResident(ctx, *resident); err != nil {
		return nil, fmt.Errorf("failed to update resident %s: %w", residentID, err)
	}

	logger.Info("Resident updated", slog.String("resident_id", residentID))
	return resident, nil
}

// DeleteResident soft-deletes a resident. Due records referencing the resident
// stay intact.
func (s *residentService) DeleteResident(ctx context.Context, residentID string, deleterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.residentRepo.FindResidentByID(ctx, residentID); err != nil {
		return fmt.Errorf("failed to find resident %s: %w", residentID, err)
	}
	if err := s.residentRepo.MarkResidentDeleted(ctx, residentID, time.Now().UTC(), deleterUserID); err != nil {
		return fmt.Errorf("failed to delete resident %s: %w", residentID, err)
	}

	logger.Info("Resident deleted", slog.String("resident_id", residentID))
	return nil
}

// RecordPopulationEvent records a birth, death, or move and applies the implied
// resident status change in the same call.
func (s *residentService) RecordPopulationEvent(ctx context.Context, residentID string, req dto.RecordPopulationEventRequest, recorderUserID string) (*domain.PopulationEvent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resident, err := s.residentRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find resident %s: %w", residentID, err)
	}

	eventType := domain.PopulationEventType(req.Type)
	now := time.Now().UTC()
	event := domain.PopulationEvent{
		EventID:    uuid.NewString(),
		ResidentID: resident.ResidentID,
		Type:       eventType,
		EventDate:  req.EventDate,
		Note:       req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     recorderUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: recorderUserID,
		},
	}
	if err := s.residentRepo.SavePopulationEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to save population event: %w", err)
	}

	if next := eventType.StatusAfter(); next != "" && next != resident.Status {
		resident.Status = next
		resident.LastUpdatedAt = now
		resident.LastUpdatedBy = recorderUserID
		if err := s.residentRepo.UpdateResident(ctx, *resident); err != nil {
			return nil, fmt.Errorf("event recorded but status update failed: %w", err)
		}
	}

	logger.Info("Population event recorded",
		slog.String("resident_id", residentID),
		slog.String("type", string(eventType)))
	return &event, nil
}

// ListPopulationEvents retrieves the events recorded against a resident.
func (s *residentService) ListPopulationEvents(ctx context.Context, residentID string) ([]domain.PopulationEvent, error) {
	events, err := s.residentRepo.FindEventsByResident(ctx, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list population events: %w", err)
	}
	return events, nil
}
