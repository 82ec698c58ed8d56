package attendance

import (
	"context"
	"errors"
	"testing"
)

func TestAggregateAbsencesStrategicScenario(t *testing.T) {
	// One generic absence on the Friday before Easter Monday 2024.
	store := &fakeStore{
		employees: []Employee{{ID: "u1", FirstName: "Mario", LastName: "Rossi", Active: true}},
		entries: []AttendanceEntry{
			{ID: "a1", UserID: "u1", Date: date(2024, 3, 29), Type: AbsenceGeneric},
		},
	}
	svc := newTestService(store)

	stats, err := svc.AggregateAbsences(context.Background(), "org1", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 1 {
		t.Fatalf("expected 1 total absence, got %d", stats.Total)
	}
	if stats.Strategic != 1 {
		t.Fatalf("expected 1 strategic absence, got %d", stats.Strategic)
	}
	if len(stats.Employees) != 1 || stats.Employees[0].Strategic != 1 {
		t.Fatalf("expected employee strategic count 1, got %+v", stats.Employees)
	}
	if stats.ByType[AbsenceGeneric] != 1 {
		t.Fatalf("expected byType[A] = 1, got %d", stats.ByType[AbsenceGeneric])
	}
	// 2024-03-29 is a Friday.
	if stats.ByWeekday[5] != 1 {
		t.Fatalf("expected byWeekday[5] = 1, got %+v", stats.ByWeekday)
	}
}

func TestAggregateAbsencesExcludesVacationFromStrategic(t *testing.T) {
	store := &fakeStore{
		employees: []Employee{{ID: "u1", FirstName: "Mario", LastName: "Rossi", Active: true}},
		entries: []AttendanceEntry{
			{ID: "a1", UserID: "u1", Date: date(2024, 3, 29), Type: AbsenceVacation},
		},
	}
	svc := newTestService(store)

	// The detector itself would flag the date.
	if cls := svc.Calendar.ClassifyStrategic(date(2024, 3, 29)); !cls.Strategic {
		t.Fatal("expected the date itself to classify as strategic")
	}

	stats, err := svc.AggregateAbsences(context.Background(), "org1", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 1 {
		t.Fatalf("expected vacation counted in totals, got %d", stats.Total)
	}
	if stats.Strategic != 0 {
		t.Fatalf("expected vacation excluded from strategic count, got %d", stats.Strategic)
	}
}

func TestAggregateAbsencesRankingAndMonths(t *testing.T) {
	store := &fakeStore{
		employees: []Employee{
			{ID: "u1", FirstName: "Mario", LastName: "Rossi", Active: true},
			{ID: "u2", FirstName: "Luisa", LastName: "Bianchi", Active: false},
		},
		entries: []AttendanceEntry{
			{ID: "a1", UserID: "u2", Date: date(2024, 3, 5), Type: AbsenceSickness},
			{ID: "a2", UserID: "u1", Date: date(2024, 2, 6), Type: AbsencePermit},
			{ID: "a3", UserID: "u1", Date: date(2024, 3, 12), Type: AbsenceGeneric},
		},
	}
	svc := newTestService(store)

	stats, err := svc.AggregateAbsences(context.Background(), "org1", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.Employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(stats.Employees))
	}
	if stats.Employees[0].UserID != "u1" || stats.Employees[0].Total != 2 {
		t.Fatalf("expected u1 ranked first with 2 absences, got %+v", stats.Employees[0])
	}
	if !stats.Employees[0].Active || stats.Employees[1].Active {
		t.Fatal("expected activity flags carried through")
	}
	if len(stats.ByMonth) != 2 || stats.ByMonth[0].Month != "2024-02" || stats.ByMonth[1].Month != "2024-03" {
		t.Fatalf("expected months sorted ascending, got %+v", stats.ByMonth)
	}
}

func TestAggregateAbsencesUnknownUserPlaceholder(t *testing.T) {
	store := &fakeStore{
		entries: []AttendanceEntry{
			{ID: "a1", UserID: "ghost", Date: date(2024, 3, 12), Type: AbsenceGeneric},
		},
	}
	svc := newTestService(store)

	stats, err := svc.AggregateAbsences(context.Background(), "org1", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.Employees) != 1 || stats.Employees[0].Name != UnknownUserName {
		t.Fatalf("expected placeholder name for unresolvable user, got %+v", stats.Employees)
	}
}

func TestAggregateAbsencesStorageErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := newTestService(&fakeStore{err: storeErr})

	if _, err := svc.AggregateAbsences(context.Background(), "org1", 90); !errors.Is(err, storeErr) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}

func TestAggregateEmployeeAbsencesPercentage(t *testing.T) {
	store := &fakeStore{
		employees: []Employee{{ID: "u1", FirstName: "Mario", LastName: "Rossi", Active: true}},
		entries: []AttendanceEntry{
			// strategic: Friday before Easter Monday
			{ID: "a1", UserID: "u1", Date: date(2024, 3, 29), Type: AbsenceGeneric},
			// midweek, not strategic
			{ID: "a2", UserID: "u1", Date: date(2024, 3, 27), Type: AbsencePermit},
			// vacation, excluded from the denominator
			{ID: "a3", UserID: "u1", Date: date(2024, 3, 22), Type: AbsenceVacation},
			// someone else's entry, ignored
			{ID: "a4", UserID: "u2", Date: date(2024, 3, 29), Type: AbsenceGeneric},
		},
	}
	svc := newTestService(store)

	stats, err := svc.AggregateEmployeeAbsences(context.Background(), "org1", "u1", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("expected 3 absences, got %d", stats.Total)
	}
	if stats.Strategic != 1 {
		t.Fatalf("expected 1 strategic absence, got %d", stats.Strategic)
	}
	if stats.StrategicPercentage != 50 {
		t.Fatalf("expected 50%%, got %d", stats.StrategicPercentage)
	}
}

func TestAggregateEmployeeAbsencesZeroDenominator(t *testing.T) {
	store := &fakeStore{
		employees: []Employee{{ID: "u1", FirstName: "Mario", LastName: "Rossi", Active: true}},
		entries: []AttendanceEntry{
			{ID: "a1", UserID: "u1", Date: date(2024, 3, 29), Type: AbsenceVacation},
			{ID: "a2", UserID: "u1", Date: date(2024, 4, 2), Type: AbsenceVacation},
		},
	}
	svc := newTestService(store)

	stats, err := svc.AggregateEmployeeAbsences(context.Background(), "org1", "u1", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.StrategicPercentage != 0 {
		t.Fatalf("expected 0%% with no non-vacation absences, got %d", stats.StrategicPercentage)
	}
}

func TestAggregateEmployeeAbsencesMissingUser(t *testing.T) {
	store := &fakeStore{
		entries: []AttendanceEntry{
			{ID: "a1", UserID: "ghost", Date: date(2024, 3, 29), Type: AbsenceGeneric},
		},
	}
	svc := newTestService(store)

	stats, err := svc.AggregateEmployeeAbsences(context.Background(), "org1", "ghost", 90)
	if err != nil {
		t.Fatalf("expected placeholder fallback, got error: %v", err)
	}
	if stats.Name != UnknownUserName {
		t.Fatalf("expected placeholder name, got %q", stats.Name)
	}
	if stats.Total != 1 || stats.Strategic != 1 {
		t.Fatalf("expected aggregation to continue, got %+v", stats)
	}
}
