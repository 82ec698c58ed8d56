package attendance

import (
	"context"
	"strconv"
	"time"
)

// BuildMonthMatrix merges approved reports, their operations, manual hour
// adjustments and absence entries into the per-employee, per-day matrix of
// one organization month. Employees appear if they are active or have any
// report or absence in the month, so deactivating an employee never hides
// historical data. An unknown organization or empty month yields an empty
// matrix, not an error.
func (s *Service) BuildMonthMatrix(ctx context.Context, orgID string, year, month int) (MonthMatrix, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	matrix := MonthMatrix{Year: year, Month: month, DaysInMonth: to.Day(), Rows: []EmployeeMonthRow{}}

	employees, err := s.Store.ListEmployees(ctx, orgID)
	if err != nil {
		return MonthMatrix{}, err
	}
	reports, err := s.Store.ListApprovedReports(ctx, orgID, from, to)
	if err != nil {
		return MonthMatrix{}, err
	}
	reportIDs := make([]string, 0, len(reports))
	for _, report := range reports {
		reportIDs = append(reportIDs, report.ID)
	}
	operations, err := s.Store.ListOperations(ctx, reportIDs)
	if err != nil {
		return MonthMatrix{}, err
	}
	adjustments, err := s.Store.ListHoursAdjustments(ctx, reportIDs)
	if err != nil {
		return MonthMatrix{}, err
	}
	entries, err := s.Store.ListAttendanceEntries(ctx, orgID, from, to)
	if err != nil {
		return MonthMatrix{}, err
	}

	hoursByReport := map[string]float64{}
	for _, op := range operations {
		hoursByReport[op.ReportID] += op.Hours
	}

	type dayData struct {
		finalHours  float64
		absenceCode string
		adjustment  *float64
	}
	byUser := map[string]map[int]*dayData{}
	dayFor := func(userID string, day int) *dayData {
		days, ok := byUser[userID]
		if !ok {
			days = map[int]*dayData{}
			byUser[userID] = days
		}
		data, ok := days[day]
		if !ok {
			data = &dayData{}
			days[day] = data
		}
		return data
	}

	for _, report := range reports {
		final := hoursByReport[report.ID]
		data := dayFor(report.UserID, report.Date.Day())
		if adj, ok := adjustments[report.ID]; ok {
			final += adj.Value
			value := adj.Value
			data.adjustment = &value
		}
		data.finalHours += final
	}

	// Absence entries overlay the cell; worked hours recorded underneath
	// stay in place.
	for _, entry := range entries {
		dayFor(entry.UserID, entry.Date.Day()).absenceCode = entry.Type
	}

	for _, employee := range employees {
		days := byUser[employee.ID]
		if !employee.Active && len(days) == 0 {
			continue
		}
		row := EmployeeMonthRow{
			UserID:   employee.ID,
			Name:     employee.FullName(),
			Active:   employee.Active,
			Days:     make([]DayCell, matrix.DaysInMonth),
			Ordinary: make([]float64, matrix.DaysInMonth),
			Extra:    make([]string, matrix.DaysInMonth),
		}
		for i := 0; i < matrix.DaysInMonth; i++ {
			cell := DayCell{Day: i + 1}
			if data, ok := days[i+1]; ok {
				cell.OrdinaryHours, cell.OvertimeHours = SplitDailyHours(data.finalHours)
				cell.AbsenceCode = data.absenceCode
				cell.AdjustmentValue = data.adjustment
			}
			row.Days[i] = cell
			row.Ordinary[i] = cell.OrdinaryHours
			row.Extra[i] = extraCell(cell)
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix, nil
}

// extraCell renders the second stacked row of a day: the absence code when
// present, otherwise the overtime hours.
func extraCell(cell DayCell) string {
	if cell.AbsenceCode != "" {
		return cell.AbsenceCode
	}
	if cell.OvertimeHours > 0 {
		return strconv.FormatFloat(cell.OvertimeHours, 'f', -1, 64)
	}
	return ""
}
