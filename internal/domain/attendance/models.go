package attendance

import "time"

type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Active    bool   `json:"active"`
}

func (e Employee) FullName() string {
	switch {
	case e.FirstName == "" && e.LastName == "":
		return UnknownUserName
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type DailyReport struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

type Operation struct {
	ID          string  `json:"id"`
	ReportID    string  `json:"reportId"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

type HoursAdjustment struct {
	ReportID string  `json:"reportId"`
	Value    float64 `json:"value"`
	Reason   string  `json:"reason,omitempty"`
}

type AttendanceEntry struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
	Notes  string    `json:"notes,omitempty"`
}

// DayCell is one (employee, day) cell of the monthly matrix.
type DayCell struct {
	Day             int      `json:"day"`
	OrdinaryHours   float64  `json:"ordinaryHours"`
	OvertimeHours   float64  `json:"overtimeHours"`
	AbsenceCode     string   `json:"absenceCode,omitempty"`
	AdjustmentValue *float64 `json:"adjustmentValue,omitempty"`
}

// EmployeeMonthRow is one employee's month. Ordinary and Extra are the two
// stacked display series: ordinary hours per day, and overtime-or-absence
// per day (the absence code replaces overtime when present).
type EmployeeMonthRow struct {
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Active   bool      `json:"active"`
	Days     []DayCell `json:"days"`
	Ordinary []float64 `json:"ordinaryRow"`
	Extra    []string  `json:"extraRow"`
}

// MonthMatrix is the full per-employee, per-day attendance matrix of one
// organization month.
type MonthMatrix struct {
	Year        int                `json:"year"`
	Month       int                `json:"month"`
	DaysInMonth int                `json:"daysInMonth"`
	Rows        []EmployeeMonthRow `json:"rows"`
}

// EmployeeAbsenceSummary aggregates one employee's absences over a window.
type EmployeeAbsenceSummary struct {
	UserID    string         `json:"userId"`
	Name      string         `json:"name"`
	Active    bool           `json:"active"`
	Total     int            `json:"totalAbsences"`
	Strategic int            `json:"strategicAbsences"`
	ByType    map[string]int `json:"byType"`
	ByWeekday map[int]int    `json:"byWeekday"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// AbsenceStats is the organization-wide aggregation over a trailing window.
type AbsenceStats struct {
	WindowDays int                      `json:"windowDays"`
	From       string                   `json:"from"`
	To         string                   `json:"to"`
	Total      int                      `json:"totalAbsences"`
	Strategic  int                      `json:"totalStrategicAbsences"`
	ByType     map[string]int           `json:"byType"`
	ByWeekday  map[int]int              `json:"byWeekday"`
	ByMonth    []MonthCount             `json:"byMonth"`
	Employees  []EmployeeAbsenceSummary `json:"byEmployee"`
}

// EmployeeAbsenceStats scopes the aggregation to a single employee and adds
// the strategic percentage over non-vacation absences.
type EmployeeAbsenceStats struct {
	EmployeeAbsenceSummary
	WindowDays          int          `json:"windowDays"`
	From                string       `json:"from"`
	To                  string       `json:"to"`
	ByMonth             []MonthCount `json:"byMonth"`
	StrategicPercentage int          `json:"strategicPercentage"`
}

// StrategicAbsence is one flagged absence in the detail section of the
// strategic report.
type StrategicAbsence struct {
	UserID string    `json:"userId"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
	Reason string    `json:"reason"`
}
