package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ListEmployees(ctx context.Context, orgID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, first_name, last_name, active
    FROM users
    WHERE org_id = $1
    ORDER BY last_name, first_name
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Active); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) ListApprovedReports(ctx context.Context, orgID string, from, to time.Time) ([]DailyReport, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, user_id, date, status
    FROM daily_reports
    WHERE org_id = $1 AND status = $2 AND date BETWEEN $3 AND $4
    ORDER BY date
  `, orgID, ReportStatusApproved, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []DailyReport
	for rows.Next() {
		var r DailyReport
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Status); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *Store) ListOperations(ctx context.Context, reportIDs []string) ([]Operation, error) {
	if len(reportIDs) == 0 {
		return nil, nil
	}
	rows, err := s.DB.Query(ctx, `
    SELECT id, report_id, description, hours
    FROM operations
    WHERE report_id = ANY($1)
  `, reportIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operations []Operation
	for rows.Next() {
		var op Operation
		if err := rows.Scan(&op.ID, &op.ReportID, &op.Description, &op.Hours); err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}
	return operations, rows.Err()
}

func (s *Store) ListHoursAdjustments(ctx context.Context, reportIDs []string) (map[string]HoursAdjustment, error) {
	if len(reportIDs) == 0 {
		return map[string]HoursAdjustment{}, nil
	}
	rows, err := s.DB.Query(ctx, `
    SELECT report_id, value, COALESCE(reason, '')
    FROM hours_adjustments
    WHERE report_id = ANY($1)
  `, reportIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adjustments := map[string]HoursAdjustment{}
	for rows.Next() {
		var adj HoursAdjustment
		if err := rows.Scan(&adj.ReportID, &adj.Value, &adj.Reason); err != nil {
			return nil, err
		}
		adjustments[adj.ReportID] = adj
	}
	return adjustments, rows.Err()
}

func (s *Store) ListAttendanceEntries(ctx context.Context, orgID string, from, to time.Time) ([]AttendanceEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, user_id, date, absence_type, COALESCE(notes, '')
    FROM attendance_entries
    WHERE org_id = $1 AND date BETWEEN $2 AND $3
    ORDER BY date
  `, orgID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []AttendanceEntry
	for rows.Next() {
		var entry AttendanceEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.Type, &entry.Notes); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) GetUser(ctx context.Context, orgID, userID string) (Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, first_name, last_name, active
    FROM users
    WHERE org_id = $1 AND id = $2
  `, orgID, userID).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}
