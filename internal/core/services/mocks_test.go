package services_test

import (
	"context"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsByOrg(ctx context.Context, orgID string, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	args := m.Called(ctx, orgID, limit, nextToken)
	var shifts []domain.Shift
	if args.Get(0) != nil {
		shifts = args.Get(0).([]domain.Shift)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return shifts, token, args.Error(2)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateShiftStatus(ctx context.Context, shiftID string, status domain.ShiftStatus, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, shiftID, status, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateShiftLocation(ctx context.Context, shiftID string, location domain.Coordinates, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, shiftID, location, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Mock ApplicationRepository ---
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.ShiftApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftApplication), args.Error(1)
}

func (m *MockApplicationRepository) FindApplicationByShiftAndStaff(ctx context.Context, shiftID, staffID string) (*domain.ShiftApplication, error) {
	args := m.Called(ctx, shiftID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftApplication), args.Error(1)
}

func (m *MockApplicationRepository) ListApplicationsByShift(ctx context.Context, shiftID string) ([]domain.ShiftApplication, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftApplication), args.Error(1)
}

func (m *MockApplicationRepository) SaveApplication(ctx context.Context, application domain.ShiftApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, notes string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, applicationID, status, notes, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockApplicationRepository) AcceptApplicationTx(ctx context.Context, applicationID string, rejectionNote string, actingUserID string, now time.Time) (*domain.ShiftApplication, error) {
	args := m.Called(ctx, applicationID, rejectionNote, actingUserID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftApplication), args.Error(1)
}

// --- Mock AttendanceRepository ---
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) FindAttendanceByShiftID(ctx context.Context, shiftID string) (*domain.ShiftAttendance, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftAttendance), args.Error(1)
}

func (m *MockAttendanceRepository) RecordGeofenceVerification(ctx context.Context, shiftID string, method domain.VerificationMethod, locationNote string, actingUserID string, now time.Time) error {
	args := m.Called(ctx, shiftID, method, locationNote, actingUserID, now)
	return args.Error(0)
}

func (m *MockAttendanceRepository) RecordCheckIn(ctx context.Context, shiftID string, checkInTime time.Time, actingUserID string) error {
	args := m.Called(ctx, shiftID, checkInTime, actingUserID)
	return args.Error(0)
}

func (m *MockAttendanceRepository) RecordCheckOut(ctx context.Context, shiftID string, checkOutTime time.Time, totalHours, hourlyRate, totalPay decimal.Decimal, actingUserID string) error {
	args := m.Called(ctx, shiftID, checkOutTime, totalHours, hourlyRate, totalPay, actingUserID)
	return args.Error(0)
}

// --- Mock TimesheetRepository ---
type MockTimesheetRepository struct {
	mock.Mock
}

func (m *MockTimesheetRepository) FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.ShiftTimesheet, error) {
	args := m.Called(ctx, timesheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftTimesheet), args.Error(1)
}

func (m *MockTimesheetRepository) FindTimesheetByShiftID(ctx context.Context, shiftID string) (*domain.ShiftTimesheet, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftTimesheet), args.Error(1)
}

func (m *MockTimesheetRepository) ListTimesheetsByOrg(ctx context.Context, orgID string, status *domain.TimesheetStatus, limit int, nextToken *string) ([]domain.ShiftTimesheet, *string, error) {
	args := m.Called(ctx, orgID, status, limit, nextToken)
	var sheets []domain.ShiftTimesheet
	if args.Get(0) != nil {
		sheets = args.Get(0).([]domain.ShiftTimesheet)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return sheets, token, args.Error(2)
}

func (m *MockTimesheetRepository) ListTimesheetsForInvoiceSync(ctx context.Context, limit int) ([]domain.ShiftTimesheet, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftTimesheet), args.Error(1)
}

func (m *MockTimesheetRepository) UpdateTimesheetReview(ctx context.Context, timesheetID string, status domain.TimesheetStatus, notes string, approvedBy string, reviewedAt time.Time) error {
	args := m.Called(ctx, timesheetID, status, notes, approvedBy, reviewedAt)
	return args.Error(0)
}

func (m *MockTimesheetRepository) UpdateTimesheetInvoice(ctx context.Context, timesheetID string, invoiceID, invoiceNumber, xeroStatus string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, timesheetID, invoiceID, invoiceNumber, xeroStatus, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockTimesheetRepository) MarkTimesheetPaid(ctx context.Context, timesheetID string, xeroStatus string, paidAt time.Time, updatedByUserID string) error {
	args := m.Called(ctx, timesheetID, xeroStatus, paidAt, updatedByUserID)
	return args.Error(0)
}

func (m *MockTimesheetRepository) MarkStaffPaid(ctx context.Context, timesheetID string, staffPaidAt time.Time, updatedByUserID string) error {
	args := m.Called(ctx, timesheetID, staffPaidAt, updatedByUserID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetFulfilmentCounts(ctx context.Context, orgID string) (int, int, int, error) {
	args := m.Called(ctx, orgID)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}

func (m *MockReportingRepository) ListTimeToFillSamples(ctx context.Context, orgID string) ([]domain.TimeToFillSample, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeToFillSample), args.Error(1)
}

// --- Mock GeomappingProvider ---
type MockGeomappingProvider struct {
	mock.Mock
}

func (m *MockGeomappingProvider) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinates), args.Error(1)
}

func (m *MockGeomappingProvider) RouteDistance(ctx context.Context, origin, dest domain.Coordinates) (float64, time.Duration, error) {
	args := m.Called(ctx, origin, dest)
	return args.Get(0).(float64), args.Get(1).(time.Duration), args.Error(2)
}

// --- Mock AccountingProvider ---
type MockAccountingProvider struct {
	mock.Mock
}

func (m *MockAccountingProvider) CreateInvoice(ctx context.Context, contactRef string, line portssvc.InvoiceLineItem, dueDate time.Time) (*portssvc.AccountingInvoice, error) {
	args := m.Called(ctx, contactRef, line, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AccountingInvoice), args.Error(1)
}

func (m *MockAccountingProvider) GetInvoice(ctx context.Context, invoiceID string) (*portssvc.AccountingInvoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AccountingInvoice), args.Error(1)
}

// --- Mock GeodistanceService ---
type MockGeodistanceService struct {
	mock.Mock
}

func (m *MockGeodistanceService) Distance(ctx context.Context, origin, dest *domain.Coordinates) domain.Distance {
	args := m.Called(ctx, origin, dest)
	return args.Get(0).(domain.Distance)
}

// --- Mock NotificationDispatcher ---
type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) Notify(ctx context.Context, userID string, text string, entityRef string) error {
	args := m.Called(ctx, userID, text, entityRef)
	return args.Error(0)
}

// --- Mock InvoicingService ---
type MockInvoicingService struct {
	mock.Mock
}

func (m *MockInvoicingService) CreateInvoiceForTimesheet(ctx context.Context, timesheetID string) (*dto.InvoiceRefResponse, error) {
	args := m.Called(ctx, timesheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InvoiceRefResponse), args.Error(1)
}

func (m *MockInvoicingService) SyncInvoiceStatus(ctx context.Context, timesheetID string) (*domain.ShiftTimesheet, error) {
	args := m.Called(ctx, timesheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftTimesheet), args.Error(1)
}

func (m *MockInvoicingService) ReconcileOnce(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
