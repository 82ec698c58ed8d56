package attendance

import (
	"context"
	"time"
)

// StoreAPI is the read-only storage collaborator of the aggregation engine.
// Every read is scoped by organization id; the engine never writes.
type StoreAPI interface {
	ListEmployees(ctx context.Context, orgID string) ([]Employee, error)
	ListApprovedReports(ctx context.Context, orgID string, from, to time.Time) ([]DailyReport, error)
	ListOperations(ctx context.Context, reportIDs []string) ([]Operation, error)
	ListHoursAdjustments(ctx context.Context, reportIDs []string) (map[string]HoursAdjustment, error)
	ListAttendanceEntries(ctx context.Context, orgID string, from, to time.Time) ([]AttendanceEntry, error)
	GetUser(ctx context.Context, orgID, userID string) (Employee, error)
}
