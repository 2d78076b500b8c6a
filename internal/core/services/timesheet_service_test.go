package services_test

import (
	"context"
	"testing"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TimesheetServiceTestSuite struct {
	suite.Suite
	mockTimesheetRepo *MockTimesheetRepository
	mockShiftRepo     *MockShiftRepository
	mockInvoicing     *MockInvoicingService
	mockNotifier      *MockNotificationDispatcher
	service           portssvc.TimesheetSvcFacade

	orgID       string
	staffID     string
	shiftID     string
	timesheetID string
}

func (suite *TimesheetServiceTestSuite) SetupTest() {
	suite.mockTimesheetRepo = new(MockTimesheetRepository)
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockInvoicing = new(MockInvoicingService)
	suite.mockNotifier = new(MockNotificationDispatcher)
	suite.service = services.NewTimesheetService(suite.mockTimesheetRepo, suite.mockShiftRepo, suite.mockInvoicing, suite.mockNotifier)

	suite.orgID = uuid.NewString()
	suite.staffID = uuid.NewString()
	suite.shiftID = uuid.NewString()
	suite.timesheetID = uuid.NewString()
}

func (suite *TimesheetServiceTestSuite) ownedShift() *domain.Shift {
	return &domain.Shift{
		ShiftID:         suite.shiftID,
		OrgID:           suite.orgID,
		Status:          domain.ShiftCompleted,
		AssignedStaffID: &suite.staffID,
	}
}

func (suite *TimesheetServiceTestSuite) timesheet(status domain.TimesheetStatus) *domain.ShiftTimesheet {
	return &domain.ShiftTimesheet{
		TimesheetID:    suite.timesheetID,
		ShiftID:        suite.shiftID,
		Status:         status,
		StaffPayStatus: domain.PayUnpaid,
	}
}

func (suite *TimesheetServiceTestSuite) expectOwnedLoad(status domain.TimesheetStatus) {
	suite.mockTimesheetRepo.On("FindTimesheetByID", mock.Anything, suite.timesheetID).Return(suite.timesheet(status), nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", mock.Anything, suite.shiftID).Return(suite.ownedShift(), nil).Once()
}

func (suite *TimesheetServiceTestSuite) TestApprove_SubmittedInvoicesAndNotifies() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	suite.expectOwnedLoad(domain.TimesheetSubmitted)
	suite.mockTimesheetRepo.On("UpdateTimesheetReview", ctx, suite.timesheetID, domain.TimesheetApproved, "looks right", actingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.timesheet(domain.TimesheetApproved), nil).Once()
	suite.mockInvoicing.On("CreateInvoiceForTimesheet", ctx, suite.timesheetID).Return(&dto.InvoiceRefResponse{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-0042",
		Status:        "AUTHORISED",
	}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.staffID, mock.AnythingOfType("string"), suite.timesheetID).Return(nil).Once()

	resp, err := suite.service.Approve(ctx, suite.orgID, suite.timesheetID, actingUserID, "looks right")

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Empty(resp.Warning)
	suite.Require().NotNil(resp.Invoice)
	suite.Equal("INV-0042", resp.Invoice.InvoiceNumber)
	suite.mockInvoicing.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestApprove_SurvivesInvoicingOutage() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	suite.expectOwnedLoad(domain.TimesheetUnderReview)
	suite.mockTimesheetRepo.On("UpdateTimesheetReview", ctx, suite.timesheetID, domain.TimesheetApproved, "", actingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.timesheet(domain.TimesheetApproved), nil).Once()
	suite.mockInvoicing.On("CreateInvoiceForTimesheet", ctx, suite.timesheetID).Return(nil, apperrors.ErrUnavailable).Once()
	suite.mockNotifier.On("Notify", ctx, suite.staffID, mock.AnythingOfType("string"), suite.timesheetID).Return(nil).Once()

	resp, err := suite.service.Approve(ctx, suite.orgID, suite.timesheetID, actingUserID, "")

	// The approval itself still succeeds; invoicing failure is a warning.
	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Nil(resp.Invoice)
	suite.NotEmpty(resp.Warning)
	suite.Equal(string(domain.TimesheetApproved), resp.Timesheet.Status)
}

func (suite *TimesheetServiceTestSuite) TestApprove_RejectedTimesheetFails() {
	ctx := context.Background()

	suite.expectOwnedLoad(domain.TimesheetRejected)

	resp, err := suite.service.Approve(ctx, suite.orgID, suite.timesheetID, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "UpdateTimesheetReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestApprove_OtherOrgForbidden() {
	ctx := context.Background()

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.timesheet(domain.TimesheetSubmitted), nil).Once()
	otherShift := suite.ownedShift()
	otherShift.OrgID = uuid.NewString()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(otherShift, nil).Once()

	resp, err := suite.service.Approve(ctx, suite.orgID, suite.timesheetID, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TimesheetServiceTestSuite) TestReject_OpensDispute() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	suite.expectOwnedLoad(domain.TimesheetSubmitted)
	suite.mockTimesheetRepo.On("UpdateTimesheetReview", ctx, suite.timesheetID, domain.TimesheetRejected, "hours look wrong", actingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.timesheet(domain.TimesheetRejected), nil).Once()

	resp, err := suite.service.Reject(ctx, suite.orgID, suite.timesheetID, actingUserID, "hours look wrong")

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Equal(string(domain.TimesheetRejected), resp.Timesheet.Status)
	suite.mockInvoicing.AssertNotCalled(suite.T(), "CreateInvoiceForTimesheet", mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestForceApprove_FromRejected() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	suite.expectOwnedLoad(domain.TimesheetRejected)
	suite.mockTimesheetRepo.On("UpdateTimesheetReview", ctx, suite.timesheetID, domain.TimesheetApproved, "override after call with facility", actingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.timesheet(domain.TimesheetApproved), nil).Once()
	suite.mockInvoicing.On("CreateInvoiceForTimesheet", ctx, suite.timesheetID).Return(nil, apperrors.ErrUnavailable).Once()
	suite.mockNotifier.On("Notify", ctx, suite.staffID, mock.AnythingOfType("string"), suite.timesheetID).Return(nil).Once()

	resp, err := suite.service.ForceApprove(ctx, suite.orgID, suite.timesheetID, actingUserID, "override after call with facility")

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.NotEmpty(resp.Warning)
}

func (suite *TimesheetServiceTestSuite) TestForceApprove_PaidFails() {
	ctx := context.Background()

	suite.expectOwnedLoad(domain.TimesheetPaid)

	resp, err := suite.service.ForceApprove(ctx, suite.orgID, suite.timesheetID, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestResolveDispute_ToApprovedInvoices() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	suite.expectOwnedLoad(domain.TimesheetRejected)
	suite.mockTimesheetRepo.On("UpdateTimesheetReview", ctx, suite.timesheetID, domain.TimesheetApproved, "resolved", actingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.timesheet(domain.TimesheetApproved), nil).Once()
	suite.mockInvoicing.On("CreateInvoiceForTimesheet", ctx, suite.timesheetID).Return(&dto.InvoiceRefResponse{InvoiceID: "inv-9"}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.staffID, mock.AnythingOfType("string"), suite.timesheetID).Return(nil).Once()

	resp, err := suite.service.ResolveDispute(ctx, suite.orgID, suite.timesheetID, actingUserID, domain.TimesheetApproved, "resolved")

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Invoice)
	suite.Equal("inv-9", resp.Invoice.InvoiceID)
}

func (suite *TimesheetServiceTestSuite) TestResolveDispute_IllegalTarget() {
	ctx := context.Background()

	resp, err := suite.service.ResolveDispute(ctx, suite.orgID, suite.timesheetID, uuid.NewString(), domain.TimesheetPaid, "")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "FindTimesheetByID", mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestResolveDispute_OnlyFromRejected() {
	ctx := context.Background()

	suite.expectOwnedLoad(domain.TimesheetSubmitted)

	resp, err := suite.service.ResolveDispute(ctx, suite.orgID, suite.timesheetID, uuid.NewString(), domain.TimesheetUnderReview, "")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestMarkStaffPaid_RequiresSettledInvoice() {
	ctx := context.Background()

	invoiceID := "inv-3"
	ts := suite.timesheet(domain.TimesheetApproved)
	ts.XeroInvoiceID = &invoiceID
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(ts, nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.ownedShift(), nil).Once()

	// The sync confirms the invoice is still unsettled.
	suite.mockInvoicing.On("SyncInvoiceStatus", ctx, suite.timesheetID).Return(ts, nil).Once()

	resp, err := suite.service.MarkStaffPaid(ctx, suite.orgID, suite.timesheetID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "MarkStaffPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestMarkStaffPaid_PaidTimesheetSucceeds() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	suite.expectOwnedLoad(domain.TimesheetPaid)
	suite.mockTimesheetRepo.On("MarkStaffPaid", ctx, suite.timesheetID, mock.AnythingOfType("time.Time"), actingUserID).Return(nil).Once()

	paid := suite.timesheet(domain.TimesheetPaid)
	paid.StaffPayStatus = domain.PayPaid
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(paid, nil).Once()

	resp, err := suite.service.MarkStaffPaid(ctx, suite.orgID, suite.timesheetID, actingUserID)

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Equal(string(domain.PayPaid), resp.Timesheet.StaffPayStatus)
}

func (suite *TimesheetServiceTestSuite) TestMarkStaffPaid_Idempotent() {
	ctx := context.Background()

	ts := suite.timesheet(domain.TimesheetPaid)
	ts.StaffPayStatus = domain.PayPaid
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(ts, nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.ownedShift(), nil).Once()

	resp, err := suite.service.MarkStaffPaid(ctx, suite.orgID, suite.timesheetID, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "MarkStaffPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestListTimesheets_StatusFilter() {
	ctx := context.Background()
	statusStr := string(domain.TimesheetSubmitted)
	params := dto.ListTimesheetsParams{Status: &statusStr, Limit: 10}

	submitted := domain.TimesheetSubmitted
	suite.mockTimesheetRepo.On("ListTimesheetsByOrg", ctx, suite.orgID, &submitted, 10, (*string)(nil)).
		Return([]domain.ShiftTimesheet{*suite.timesheet(domain.TimesheetSubmitted)}, nil, nil).Once()

	resp, err := suite.service.ListTimesheets(ctx, suite.orgID, params)

	suite.Require().NoError(err)
	suite.Len(resp.Timesheets, 1)
	suite.Nil(resp.NextToken)
}

func TestTimesheetService(t *testing.T) {
	suite.Run(t, new(TimesheetServiceTestSuite))
}
