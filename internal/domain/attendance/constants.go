package attendance

const (
	ReportStatusPending  = "pending"
	ReportStatusApproved = "approved"
)

// Absence type codes. The vocabulary is fixed; classification and display
// depend on exact matches.
const (
	AbsenceGeneric  = "A"
	AbsenceVacation = "F"
	AbsencePermit   = "P"
	AbsenceSickness = "M"
	AbsenceParental = "CP"
	AbsenceLaw104   = "L104"
)

// AbsenceLabels maps each code to its Italian display name.
var AbsenceLabels = map[string]string{
	AbsenceGeneric:  "Assenza generica",
	AbsenceVacation: "Ferie",
	AbsencePermit:   "Permesso",
	AbsenceSickness: "Malattia",
	AbsenceParental: "Congedo parentale",
	AbsenceLaw104:   "Permesso L.104",
}

// absenceCodeOrder fixes the legend ordering in rendered reports.
var absenceCodeOrder = []string{
	AbsenceGeneric,
	AbsenceVacation,
	AbsencePermit,
	AbsenceSickness,
	AbsenceParental,
	AbsenceLaw104,
}

// OrdinaryDailyHours is the daily threshold splitting ordinary hours from
// overtime. Fixed business constant, not configurable.
const OrdinaryDailyHours = 8.0

// DefaultWindowDays is the trailing window used by absence statistics when
// the caller does not specify one.
const DefaultWindowDays = 90

// UnknownUserName is the display fallback for records whose user is no
// longer resolvable.
const UnknownUserName = "utente sconosciuto"
