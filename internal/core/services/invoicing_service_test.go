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

type InvoicingServiceTestSuite struct {
	suite.Suite
	mockTimesheetRepo *MockTimesheetRepository
	mockShiftRepo     *MockShiftRepository
	mockAccounting    *MockAccountingProvider
	service           portssvc.InvoicingSvcFacade

	shiftID     string
	timesheetID string
	contactID   string
}

func (suite *InvoicingServiceTestSuite) SetupTest() {
	suite.mockTimesheetRepo = new(MockTimesheetRepository)
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockAccounting = new(MockAccountingProvider)
	suite.contactID = uuid.NewString()
	suite.service = services.NewInvoicingService(suite.mockTimesheetRepo, suite.mockShiftRepo, suite.mockAccounting, suite.contactID, 14*24*time.Hour)

	suite.shiftID = uuid.NewString()
	suite.timesheetID = uuid.NewString()
}

func (suite *InvoicingServiceTestSuite) approvedTimesheet() *domain.ShiftTimesheet {
	return &domain.ShiftTimesheet{
		TimesheetID: suite.timesheetID,
		ShiftID:     suite.shiftID,
		Status:      domain.TimesheetApproved,
		TotalHours:  decimal.RequireFromString("8.00"),
		HourlyRate:  decimal.NewFromInt(20),
		TotalPay:    decimal.RequireFromString("160.00"),
	}
}

func (suite *InvoicingServiceTestSuite) shift() *domain.Shift {
	return &domain.Shift{
		ShiftID:   suite.shiftID,
		Title:     "Night nurse cover",
		StartTime: time.Date(2026, 8, 10, 20, 0, 0, 0, time.UTC),
	}
}

func (suite *InvoicingServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.approvedTimesheet(), nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.shift(), nil).Once()
	suite.mockAccounting.On("CreateInvoice", ctx, suite.contactID, mock.MatchedBy(func(line portssvc.InvoiceLineItem) bool {
		return line.Hours.Equal(decimal.RequireFromString("8.00")) && line.Rate.Equal(decimal.NewFromInt(20))
	}), mock.AnythingOfType("time.Time")).Return(&portssvc.AccountingInvoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-0042",
		Status:        "AUTHORISED",
	}, nil).Once()
	suite.mockTimesheetRepo.On("UpdateTimesheetInvoice", ctx, suite.timesheetID, "inv-1", "INV-0042", "AUTHORISED", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	resp, err := suite.service.CreateInvoiceForTimesheet(ctx, suite.timesheetID)

	suite.Require().NoError(err)
	suite.Equal("inv-1", resp.InvoiceID)
	suite.Equal("INV-0042", resp.InvoiceNumber)
	suite.mockAccounting.AssertExpectations(suite.T())
	suite.mockTimesheetRepo.AssertExpectations(suite.T())
}

func (suite *InvoicingServiceTestSuite) TestCreateInvoice_IdempotentWhenAlreadyInvoiced() {
	ctx := context.Background()

	invoiceID := "inv-1"
	invoiceNumber := "INV-0042"
	ts := suite.approvedTimesheet()
	ts.XeroInvoiceID = &invoiceID
	ts.XeroInvoiceNumber = &invoiceNumber
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(ts, nil).Once()

	resp, err := suite.service.CreateInvoiceForTimesheet(ctx, suite.timesheetID)

	suite.Require().NoError(err)
	suite.Equal(invoiceID, resp.InvoiceID)
	suite.Equal(invoiceNumber, resp.InvoiceNumber)
	suite.mockAccounting.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoicingServiceTestSuite) TestCreateInvoice_UnapprovedFails() {
	ctx := context.Background()

	ts := suite.approvedTimesheet()
	ts.Status = domain.TimesheetSubmitted
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(ts, nil).Once()

	resp, err := suite.service.CreateInvoiceForTimesheet(ctx, suite.timesheetID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoicingServiceTestSuite) TestCreateInvoice_OutageLeavesTimesheetUntouched() {
	ctx := context.Background()

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.approvedTimesheet(), nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.shift(), nil).Once()
	suite.mockAccounting.On("CreateInvoice", ctx, suite.contactID, mock.AnythingOfType("services.InvoiceLineItem"), mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrUnavailable).Once()

	resp, err := suite.service.CreateInvoiceForTimesheet(ctx, suite.timesheetID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "UpdateTimesheetInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoicingServiceTestSuite) TestSyncInvoiceStatus_PaidTransitionsTimesheet() {
	ctx := context.Background()

	invoiceID := "inv-1"
	ts := suite.approvedTimesheet()
	ts.XeroInvoiceID = &invoiceID
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(ts, nil).Once()
	suite.mockAccounting.On("GetInvoice", ctx, invoiceID).Return(&portssvc.AccountingInvoice{
		InvoiceID:  invoiceID,
		Status:     "PAID",
		AmountPaid: decimal.RequireFromString("160.00"),
	}, nil).Once()
	suite.mockTimesheetRepo.On("MarkTimesheetPaid", ctx, suite.timesheetID, "PAID", mock.AnythingOfType("time.Time"), mock.AnythingOfType("string")).Return(nil).Once()

	paid := suite.approvedTimesheet()
	paid.Status = domain.TimesheetPaid
	paid.XeroInvoiceID = &invoiceID
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(paid, nil).Once()

	result, err := suite.service.SyncInvoiceStatus(ctx, suite.timesheetID)

	suite.Require().NoError(err)
	suite.Equal(domain.TimesheetPaid, result.Status)
	suite.mockTimesheetRepo.AssertExpectations(suite.T())
}

func (suite *InvoicingServiceTestSuite) TestSyncInvoiceStatus_NoInvoiceFails() {
	ctx := context.Background()

	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(suite.approvedTimesheet(), nil).Once()

	result, err := suite.service.SyncInvoiceStatus(ctx, suite.timesheetID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoicingServiceTestSuite) TestReconcileOnce_RetriesAndSkipsFailures() {
	ctx := context.Background()

	uninvoiced := suite.approvedTimesheet()

	otherID := uuid.NewString()
	otherInvoiceID := "inv-2"
	invoiced := &domain.ShiftTimesheet{
		TimesheetID:   otherID,
		ShiftID:       uuid.NewString(),
		Status:        domain.TimesheetApproved,
		XeroInvoiceID: &otherInvoiceID,
	}

	suite.mockTimesheetRepo.On("ListTimesheetsForInvoiceSync", ctx, mock.AnythingOfType("int")).
		Return([]domain.ShiftTimesheet{*uninvoiced, *invoiced}, nil).Once()

	// First candidate: invoicing still down, skipped.
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, suite.timesheetID).Return(uninvoiced, nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, suite.shiftID).Return(suite.shift(), nil).Once()
	suite.mockAccounting.On("CreateInvoice", ctx, suite.contactID, mock.AnythingOfType("services.InvoiceLineItem"), mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrUnavailable).Once()

	// Second candidate: status refresh succeeds.
	suite.mockTimesheetRepo.On("FindTimesheetByID", ctx, otherID).Return(invoiced, nil).Twice()
	suite.mockAccounting.On("GetInvoice", ctx, otherInvoiceID).Return(&portssvc.AccountingInvoice{
		InvoiceID: otherInvoiceID,
		Status:    "AUTHORISED",
	}, nil).Once()
	suite.mockTimesheetRepo.On("UpdateTimesheetInvoice", ctx, otherID, otherInvoiceID, mock.AnythingOfType("string"), "AUTHORISED", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	touched, err := suite.service.ReconcileOnce(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, touched)
	suite.mockAccounting.AssertExpectations(suite.T())
}

func TestInvoicingService(t *testing.T) {
	suite.Run(t, new(InvoicingServiceTestSuite))
}
