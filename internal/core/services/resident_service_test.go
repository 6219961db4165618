package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/core/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

type ResidentServiceTestSuite struct {
	suite.Suite
	mockResidentRepo *MockResidentRepository
	mockUserSvc      *MockUserService
	service          portssvc.ResidentSvcFacade
}

func (suite *ResidentServiceTestSuite) SetupTest() {
	suite.mockResidentRepo = new(MockResidentRepository)
	suite.mockUserSvc = new(MockUserService)
	suite.service = services.NewResidentService(suite.mockResidentRepo, suite.mockUserSvc)
}

func (suite *ResidentServiceTestSuite) TestCreateResident_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateResidentRequest{
		NIK:         "3173012345678901",
		KKNumber:    "3173019876543210",
		Name:        "Budi Santoso",
		Address:     "Jl. Melati No. 5",
		HouseNumber: "B5",
		Phone:       "081234567890",
	}

	suite.mockResidentRepo.On("FindResidentByNIK", ctx, req.NIK).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockResidentRepo.On("SaveResident", ctx, mock.MatchedBy(func(r domain.Resident) bool {
		return r.NIK == req.NIK && r.Name == req.Name && r.Status == domain.ResidentActive &&
			r.UserID == "" && r.CreatedBy == creatorID
	})).Return(nil).Once()

	resident, err := suite.service.CreateResident(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resident)
	suite.NotEmpty(resident.ResidentID)
	suite.Equal(domain.ResidentActive, resident.Status)
	suite.mockResidentRepo.AssertExpectations(suite.T())
}

func (suite *ResidentServiceTestSuite) TestCreateResident_DuplicateNIK() {
	ctx := context.Background()
	nik := "3173012345678901"
	existing := &domain.Resident{ResidentID: uuid.NewString(), NIK: nik}

	suite.mockResidentRepo.On("FindResidentByNIK", ctx, nik).Return(existing, nil).Once()

	resident, err := suite.service.CreateResident(ctx, dto.CreateResidentRequest{NIK: nik, Name: "Budi"}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(resident)
	suite.mockResidentRepo.AssertNotCalled(suite.T(), "SaveResident", mock.Anything, mock.Anything)
}

func (suite *ResidentServiceTestSuite) TestRegisterResident_Success() {
	ctx := context.Background()
	req := dto.RegisterResidentRequest{
		Username: "budi.santoso",
		Password: "rahasia-sekali",
		NIK:      "3173012345678901",
		KKNumber: "3173019876543210",
		Name:     "Budi Santoso",
		Address:  "Jl. Melati No. 5",
	}
	newUser := &domain.User{UserID: uuid.NewString(), Username: req.Username, Role: domain.RoleWarga}

	suite.mockResidentRepo.On("FindResidentByNIK", ctx, req.NIK).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserSvc.On("CreateUser", ctx, mock.MatchedBy(func(r dto.CreateUserRequest) bool {
		return r.Username == req.Username && r.Role == string(domain.RoleWarga)
	})).Return(newUser, nil).Once()
	suite.mockResidentRepo.On("SaveResident", ctx, mock.MatchedBy(func(r domain.Resident) bool {
		return r.UserID == newUser.UserID && r.NIK == req.NIK && r.Status == domain.ResidentActive
	})).Return(nil).Once()

	resident, err := suite.service.RegisterResident(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(newUser.UserID, resident.UserID)
	suite.mockUserSvc.AssertExpectations(suite.T())
	suite.mockResidentRepo.AssertExpectations(suite.T())
}

func (suite *ResidentServiceTestSuite) TestRegisterResident_UsernameTaken() {
	ctx := context.Background()
	req := dto.RegisterResidentRequest{
		Username: "budi.santoso",
		Password: "rahasia-sekali",
		NIK:      "3173012345678901",
		Name:     "Budi Santoso",
	}

	suite.mockResidentRepo.On("FindResidentByNIK", ctx, req.NIK).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserSvc.On("CreateUser", ctx, mock.AnythingOfType("dto.CreateUserRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	resident, err := suite.service.RegisterResident(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(resident)
	suite.mockResidentRepo.AssertNotCalled(suite.T(), "SaveResident", mock.Anything, mock.Anything)
}

func (suite *ResidentServiceTestSuite) TestUpdateResident_PartialUpdate() {
	ctx := context.Background()
	updaterID := uuid.NewString()
	existing := &domain.Resident{
		ResidentID: uuid.NewString(),
		NIK:        "3173012345678901",
		Name:       "Budi Santoso",
		Address:    "Jl. Melati No. 5",
		Phone:      "081234567890",
		Status:     domain.ResidentActive,
	}
	req := dto.UpdateResidentRequest{Phone: "089876543210"}

	suite.mockResidentRepo.On("FindResidentByID", ctx, existing.ResidentID).Return(existing, nil).Once()
	suite.mockResidentRepo.On("UpdateResident", ctx, mock.MatchedBy(func(r domain.Resident) bool {
		// Only the phone changes; the rest stays as loaded.
		return r.Phone == req.Phone && r.Name == "Budi Santoso" && r.Address == "Jl. Melati No. 5" &&
			r.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	resident, err := suite.service.UpdateResident(ctx, existing.ResidentID, req, updaterID)

	suite.Require().NoError(err)
	suite.Equal(req.Phone, resident.Phone)
	suite.mockResidentRepo.AssertExpectations(suite.T())
}

func (suite *ResidentServiceTestSuite) TestDeleteResident_NotFound() {
	ctx := context.Background()
	residentID := uuid.NewString()

	suite.mockResidentRepo.On("FindResidentByID", ctx, residentID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteResident(ctx, residentID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockResidentRepo.AssertNotCalled(suite.T(), "MarkResidentDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ResidentServiceTestSuite) TestRecordPopulationEvent_DeathUpdatesStatus() {
	ctx := context.Background()
	recorderID := uuid.NewString()
	resident := &domain.Resident{
		ResidentID: uuid.NewString(),
		Name:       "Budi Santoso",
		Status:     domain.ResidentActive,
	}
	req := dto.RecordPopulationEventRequest{
		Type:      string(domain.EventKematian),
		EventDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Note:      "Meninggal di RS",
	}

	suite.mockResidentRepo.On("FindResidentByID", ctx, resident.ResidentID).Return(resident, nil).Once()
	suite.mockResidentRepo.On("SavePopulationEvent", ctx, mock.MatchedBy(func(e domain.PopulationEvent) bool {
		return e.ResidentID == resident.ResidentID && e.Type == domain.EventKematian && e.CreatedBy == recorderID
	})).Return(nil).Once()
	suite.mockResidentRepo.On("UpdateResident", ctx, mock.MatchedBy(func(r domain.Resident) bool {
		return r.ResidentID == resident.ResidentID && r.Status == domain.ResidentDeceased
	})).Return(nil).Once()

	event, err := suite.service.RecordPopulationEvent(ctx, resident.ResidentID, req, recorderID)

	suite.Require().NoError(err)
	suite.Equal(domain.EventKematian, event.Type)
	suite.mockResidentRepo.AssertExpectations(suite.T())
}

func (suite *ResidentServiceTestSuite) TestRecordPopulationEvent_BirthKeepsStatus() {
	ctx := context.Background()
	resident := &domain.Resident{
		ResidentID: uuid.NewString(),
		Status:     domain.ResidentActive,
	}
	req := dto.RecordPopulationEventRequest{
		Type:      string(domain.EventKelahiran),
		EventDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockResidentRepo.On("FindResidentByID", ctx, resident.ResidentID).Return(resident, nil).Once()
	suite.mockResidentRepo.On("SavePopulationEvent", ctx, mock.AnythingOfType("domain.PopulationEvent")).Return(nil).Once()

	event, err := suite.service.RecordPopulationEvent(ctx, resident.ResidentID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(event)
	// Births don't change the resident's own status.
	suite.mockResidentRepo.AssertNotCalled(suite.T(), "UpdateResident", mock.Anything, mock.Anything)
}

func TestResidentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResidentServiceTestSuite))
}
