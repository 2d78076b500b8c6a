package pgsql

import (
	portsrepo "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShiftRepo:       newPgxShiftRepository(dbPool),
		ApplicationRepo: newPgxApplicationRepository(dbPool),
		AttendanceRepo:  newPgxAttendanceRepository(dbPool),
		TimesheetRepo:   newPgxTimesheetRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
