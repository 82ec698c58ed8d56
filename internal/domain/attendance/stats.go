package attendance

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/domain/holiday"
)

// AggregateAbsences aggregates the organization's absence entries over the
// trailing window: totals, per-type, per-weekday and per-month breakdowns,
// and a per-employee ranking. Vacation entries are never counted as
// strategic. Inactive employees with in-window absences stay in the output.
func (s *Service) AggregateAbsences(ctx context.Context, orgID string, windowDays int) (AbsenceStats, error) {
	from, to := s.window(windowDays)
	stats := AbsenceStats{
		WindowDays: windowDays,
		From:       holiday.ISO(from),
		To:         holiday.ISO(to),
		ByType:     map[string]int{},
		ByWeekday:  map[int]int{},
		ByMonth:    []MonthCount{},
		Employees:  []EmployeeAbsenceSummary{},
	}
	if stats.WindowDays <= 0 {
		stats.WindowDays = DefaultWindowDays
	}

	entries, err := s.Store.ListAttendanceEntries(ctx, orgID, from, to)
	if err != nil {
		return AbsenceStats{}, err
	}
	employees, err := s.Store.ListEmployees(ctx, orgID)
	if err != nil {
		return AbsenceStats{}, err
	}
	byID := make(map[string]Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}

	byMonth := map[string]int{}
	summaries := map[string]*EmployeeAbsenceSummary{}
	for _, entry := range entries {
		stats.Total++
		stats.ByType[entry.Type]++
		stats.ByWeekday[int(entry.Date.Weekday())]++
		byMonth[entry.Date.Format("2006-01")]++

		summary, ok := summaries[entry.UserID]
		if !ok {
			employee, known := byID[entry.UserID]
			name := UnknownUserName
			if known {
				name = employee.FullName()
			}
			summary = &EmployeeAbsenceSummary{
				UserID:    entry.UserID,
				Name:      name,
				Active:    employee.Active,
				ByType:    map[string]int{},
				ByWeekday: map[int]int{},
			}
			summaries[entry.UserID] = summary
		}
		summary.Total++
		summary.ByType[entry.Type]++
		summary.ByWeekday[int(entry.Date.Weekday())]++

		if entry.Type != AbsenceVacation {
			if cls := s.Calendar.ClassifyStrategic(entry.Date); cls.Strategic {
				stats.Strategic++
				summary.Strategic++
			}
		}
	}

	stats.ByMonth = sortedMonthCounts(byMonth)
	for _, summary := range summaries {
		stats.Employees = append(stats.Employees, *summary)
	}
	sort.SliceStable(stats.Employees, func(i, j int) bool {
		return stats.Employees[i].Total > stats.Employees[j].Total
	})
	return stats, nil
}

// AggregateEmployeeAbsences mirrors AggregateAbsences for a single employee
// and adds the strategic percentage over non-vacation absences. A zero
// denominator yields 0.
func (s *Service) AggregateEmployeeAbsences(ctx context.Context, orgID, userID string, windowDays int) (EmployeeAbsenceStats, error) {
	from, to := s.window(windowDays)
	stats := EmployeeAbsenceStats{
		EmployeeAbsenceSummary: EmployeeAbsenceSummary{
			UserID:    userID,
			Name:      UnknownUserName,
			ByType:    map[string]int{},
			ByWeekday: map[int]int{},
		},
		WindowDays: windowDays,
		From:       holiday.ISO(from),
		To:         holiday.ISO(to),
		ByMonth:    []MonthCount{},
	}
	if stats.WindowDays <= 0 {
		stats.WindowDays = DefaultWindowDays
	}

	employee, err := s.Store.GetUser(ctx, orgID, userID)
	switch {
	case err == nil:
		stats.Name = employee.FullName()
		stats.Active = employee.Active
	case errors.Is(err, ErrNotFound):
		// keep the placeholder and carry on
	default:
		return EmployeeAbsenceStats{}, err
	}

	entries, err := s.Store.ListAttendanceEntries(ctx, orgID, from, to)
	if err != nil {
		return EmployeeAbsenceStats{}, err
	}

	byMonth := map[string]int{}
	nonVacation := 0
	for _, entry := range entries {
		if entry.UserID != userID {
			continue
		}
		stats.Total++
		stats.ByType[entry.Type]++
		stats.ByWeekday[int(entry.Date.Weekday())]++
		byMonth[entry.Date.Format("2006-01")]++

		if entry.Type == AbsenceVacation {
			continue
		}
		nonVacation++
		if cls := s.Calendar.ClassifyStrategic(entry.Date); cls.Strategic {
			stats.Strategic++
		}
	}

	stats.ByMonth = sortedMonthCounts(byMonth)
	if nonVacation > 0 {
		stats.StrategicPercentage = int(math.Round(100 * float64(stats.Strategic) / float64(nonVacation)))
	}
	return stats, nil
}

// sortedMonthCounts orders YYYY-MM buckets ascending; lexicographic order is
// chronological for this fixed-width format.
func sortedMonthCounts(byMonth map[string]int) []MonthCount {
	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)
	out := make([]MonthCount, 0, len(months))
	for _, month := range months {
		out = append(out, MonthCount{Month: month, Count: byMonth[month]})
	}
	return out
}
