package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockAttendanceRepo *MockAttendanceRepository
	mockTimesheetRepo  *MockTimesheetRepository
	mockShiftRepo      *MockShiftRepository
	mockGeodistance    *MockGeodistanceService
	mockNotifier       *MockNotificationDispatcher
	service            portssvc.AttendanceSvcFacade

	orgID   string
	staffID string
	shiftID string
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockAttendanceRepo = new(MockAttendanceRepository)
	suite.mockTimesheetRepo = new(MockTimesheetRepository)
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockGeodistance = new(MockGeodistanceService)
	suite.mockNotifier = new(MockNotificationDispatcher)
	suite.service = services.NewAttendanceService(suite.mockAttendanceRepo, suite.mockTimesheetRepo, suite.mockShiftRepo, suite.mockGeodistance, suite.mockNotifier)

	suite.orgID = uuid.NewString()
	suite.staffID = uuid.NewString()
	suite.shiftID = uuid.NewString()
}

func (suite *AttendanceServiceTestSuite) assignedShift() *domain.Shift {
	return &domain.Shift{
		ShiftID:         suite.shiftID,
		OrgID:           suite.orgID,
		Status:          domain.ShiftAssigned,
		Location:        &domain.Coordinates{Lat: 51.5007, Lon: -0.1246},
		HourlyRate:      decimal.NewFromInt(20),
		AssignedStaffID: &suite.staffID,
	}
}

func (suite *AttendanceServiceTestSuite) TestCheckGeofence_WithinRadiusUnlocksCheckIn() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockGeodistance.On("Distance", ctx, mock.Anything, mock.Anything).Return(domain.Distance{Meters: 42, Km: 0.0, Miles: 0.0, Valid: true}).Once()
	suite.mockAttendanceRepo.On("RecordGeofenceVerification", ctx, suite.shiftID, domain.VerificationGeofence, mock.AnythingOfType("string"), suite.staffID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.staffID, mock.AnythingOfType("string"), suite.shiftID).Return(nil).Once()

	result, err := suite.service.CheckGeofence(ctx, suite.shiftID, suite.staffID, 51.5008, -0.1247)

	suite.Require().NoError(err)
	suite.True(result.WithinGeofence)
	suite.True(result.CheckInAllowed)
	suite.Equal(42.0, result.Distance.Meters)
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckGeofence_ExactlyOnBoundaryPasses() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockGeodistance.On("Distance", ctx, mock.Anything, mock.Anything).Return(domain.Distance{Meters: 100, Km: 0.1, Miles: 0.1, Valid: true}).Once()
	suite.mockAttendanceRepo.On("RecordGeofenceVerification", ctx, suite.shiftID, domain.VerificationGeofence, mock.AnythingOfType("string"), suite.staffID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.staffID, mock.AnythingOfType("string"), suite.shiftID).Return(nil).Once()

	result, err := suite.service.CheckGeofence(ctx, suite.shiftID, suite.staffID, 51.5008, -0.1247)

	suite.Require().NoError(err)
	suite.True(result.CheckInAllowed)
}

func (suite *AttendanceServiceTestSuite) TestCheckGeofence_OutsideRadiusDoesNotVerify() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockGeodistance.On("Distance", ctx, mock.Anything, mock.Anything).Return(domain.Distance{Meters: 101, Km: 0.1, Miles: 0.1, Valid: true}).Once()

	result, err := suite.service.CheckGeofence(ctx, suite.shiftID, suite.staffID, 51.51, -0.13)

	suite.Require().NoError(err)
	suite.False(result.WithinGeofence)
	suite.False(result.CheckInAllowed)
	suite.NotEmpty(result.Message)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "RecordGeofenceVerification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCheckGeofence_NotAssignedStaffForbidden() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()

	result, err := suite.service.CheckGeofence(ctx, suite.shiftID, uuid.NewString(), 51.5008, -0.1247)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AttendanceServiceTestSuite) TestCheckGeofence_ShiftWithoutCoordinates() {
	ctx := context.Background()
	shift := suite.assignedShift()
	shift.Location = nil
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(shift, nil).Once()

	result, err := suite.service.CheckGeofence(ctx, suite.shiftID, suite.staffID, 51.5008, -0.1247)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_RequiresGeofenceVerification() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByShiftID", ctx, suite.shiftID).Return(&domain.ShiftTimesheet{
		ShiftID:            suite.shiftID,
		VerificationMethod: domain.VerificationNone,
	}, nil).Once()

	attendance, err := suite.service.CheckIn(ctx, suite.shiftID, suite.staffID)

	suite.Require().Error(err)
	suite.Nil(attendance)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "RecordCheckIn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_VerifiedSucceeds() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByShiftID", ctx, suite.shiftID).Return(&domain.ShiftTimesheet{
		ShiftID:            suite.shiftID,
		VerificationMethod: domain.VerificationGeofence,
	}, nil).Once()
	suite.mockAttendanceRepo.On("RecordCheckIn", ctx, suite.shiftID, mock.AnythingOfType("time.Time"), suite.staffID).Return(nil).Once()

	now := time.Now()
	suite.mockAttendanceRepo.On("FindAttendanceByShiftID", ctx, suite.shiftID).Return(&domain.ShiftAttendance{
		ShiftID:     suite.shiftID,
		Status:      domain.CheckedIn,
		CheckInTime: &now,
	}, nil).Once()

	attendance, err := suite.service.CheckIn(ctx, suite.shiftID, suite.staffID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckedIn, attendance.Status)
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_AlreadyCheckedInConflict() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByShiftID", ctx, suite.shiftID).Return(&domain.ShiftTimesheet{
		ShiftID:            suite.shiftID,
		VerificationMethod: domain.VerificationGeofence,
	}, nil).Once()
	suite.mockAttendanceRepo.On("RecordCheckIn", ctx, suite.shiftID, mock.AnythingOfType("time.Time"), suite.staffID).Return(apperrors.ErrConflict).Once()

	attendance, err := suite.service.CheckIn(ctx, suite.shiftID, suite.staffID)

	suite.Require().Error(err)
	suite.Nil(attendance)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_DerivesHoursAndPay() {
	ctx := context.Background()
	checkIn := time.Now().Add(-8 * time.Hour)

	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockAttendanceRepo.On("FindAttendanceByShiftID", ctx, suite.shiftID).Return(&domain.ShiftAttendance{
		ShiftID:     suite.shiftID,
		Status:      domain.CheckedIn,
		CheckInTime: &checkIn,
	}, nil).Once()

	// An 8 hour shift at 20.00/h pays 160.00.
	suite.mockAttendanceRepo.On("RecordCheckOut", ctx, suite.shiftID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(hours decimal.Decimal) bool { return hours.Equal(decimal.RequireFromString("8.00")) }),
		mock.MatchedBy(func(rate decimal.Decimal) bool { return rate.Equal(decimal.NewFromInt(20)) }),
		mock.MatchedBy(func(pay decimal.Decimal) bool { return pay.Equal(decimal.RequireFromString("160.00")) }),
		suite.staffID).Return(nil).Once()
	suite.mockShiftRepo.On("UpdateShiftStatus", ctx, suite.shiftID, domain.ShiftCompleted, suite.staffID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	checkOut := time.Now()
	suite.mockAttendanceRepo.On("FindAttendanceByShiftID", ctx, suite.shiftID).Return(&domain.ShiftAttendance{
		ShiftID:      suite.shiftID,
		Status:       domain.CheckedOut,
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
	}, nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByShiftID", ctx, suite.shiftID).Return(&domain.ShiftTimesheet{
		ShiftID:    suite.shiftID,
		Status:     domain.TimesheetSubmitted,
		TotalHours: decimal.RequireFromString("8.00"),
		HourlyRate: decimal.NewFromInt(20),
		TotalPay:   decimal.RequireFromString("160.00"),
	}, nil).Once()

	result, err := suite.service.CheckOut(ctx, suite.shiftID, suite.staffID)

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.True(result.TotalHours.Equal(decimal.RequireFromString("8.00")))
	suite.True(result.TotalPay.Equal(decimal.RequireFromString("160.00")))
	suite.Equal(string(domain.TimesheetSubmitted), result.Timesheet.Status)
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_WithoutCheckInIsValidationError() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockAttendanceRepo.On("FindAttendanceByShiftID", ctx, suite.shiftID).Return(&domain.ShiftAttendance{
		ShiftID: suite.shiftID,
		Status:  domain.NotCheckedIn,
	}, nil).Once()

	result, err := suite.service.CheckOut(ctx, suite.shiftID, suite.staffID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "RecordCheckOut", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_NoAttendanceRowIsValidationError() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockAttendanceRepo.On("FindAttendanceByShiftID", ctx, suite.shiftID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CheckOut(ctx, suite.shiftID, suite.staffID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_AlreadyCheckedOutConflict() {
	ctx := context.Background()
	checkIn := time.Now().Add(-9 * time.Hour)
	checkOut := time.Now().Add(-time.Hour)
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.assignedShift(), nil).Once()
	suite.mockAttendanceRepo.On("FindAttendanceByShiftID", ctx, suite.shiftID).Return(&domain.ShiftAttendance{
		ShiftID:      suite.shiftID,
		Status:       domain.CheckedOut,
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
	}, nil).Once()

	result, err := suite.service.CheckOut(ctx, suite.shiftID, suite.staffID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "RecordCheckOut", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendanceService(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
