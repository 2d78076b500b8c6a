package services

import (
	portsrepo "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/repositories"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	geomapping portssvc.GeomappingProvider,
	accounting portssvc.AccountingProvider,
	notifier portssvc.NotificationDispatcher,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Geodistance first since attendance depends on it
	container.Geodistance = NewGeodistanceService(geomapping)

	container.Shift = NewShiftService(repos.ShiftRepo, geomapping)
	container.Application = NewApplicationService(repos.ApplicationRepo, repos.ShiftRepo, notifier)
	container.Attendance = NewAttendanceService(repos.AttendanceRepo, repos.TimesheetRepo, repos.ShiftRepo, container.Geodistance, notifier)

	// Invoicing before timesheet since approval hands off to it
	container.Invoicing = NewInvoicingService(repos.TimesheetRepo, repos.ShiftRepo, accounting, cfg.XeroContactID, cfg.InvoiceDueIn)
	container.Timesheet = NewTimesheetService(repos.TimesheetRepo, repos.ShiftRepo, container.Invoicing, notifier)

	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
