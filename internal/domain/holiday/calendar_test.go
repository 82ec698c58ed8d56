package holiday

import (
	"testing"
	"time"
)

func TestHolidaysForYearIncludesEaster(t *testing.T) {
	cal := NewCalendar()

	holidays := cal.HolidaysForYear(2024)
	for _, date := range []string{"2024-03-31", "2024-04-01"} {
		if _, ok := holidays[date]; !ok {
			t.Fatalf("expected %s in 2024 holidays", date)
		}
	}

	holidays = cal.HolidaysForYear(2025)
	for _, date := range []string{"2025-04-20", "2025-04-21"} {
		if _, ok := holidays[date]; !ok {
			t.Fatalf("expected %s in 2025 holidays", date)
		}
	}
}

func TestHolidaysForYearFixedDates(t *testing.T) {
	cal := NewCalendar()
	holidays := cal.HolidaysForYear(2024)

	if len(holidays) != 12 {
		t.Fatalf("expected 12 holidays, got %d", len(holidays))
	}
	for _, date := range []string{"2024-01-01", "2024-01-06", "2024-04-25", "2024-05-01", "2024-06-02", "2024-08-15", "2024-11-01", "2024-12-08", "2024-12-25", "2024-12-26"} {
		if _, ok := holidays[date]; !ok {
			t.Fatalf("expected fixed holiday %s", date)
		}
	}
}

func TestHolidaysForYearCacheImmutable(t *testing.T) {
	cal := NewCalendar()

	first := cal.HolidaysForYear(2025)
	delete(first, "2025-12-25")
	first["2025-07-15"] = struct{}{}

	second := cal.HolidaysForYear(2025)
	if _, ok := second["2025-12-25"]; !ok {
		t.Fatal("cached set lost an entry after caller mutation")
	}
	if _, ok := second["2025-07-15"]; ok {
		t.Fatal("cached set gained an entry from caller mutation")
	}
	if len(second) != 12 {
		t.Fatalf("expected 12 holidays on second call, got %d", len(second))
	}
}

func TestIsNonWorkingDay(t *testing.T) {
	cal := NewCalendar()

	// 2024-01-01 is a Monday and a holiday.
	if !cal.IsNonWorkingDay(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected New Year Monday to be non-working")
	}
	// 2024-01-13 is a Saturday.
	if !cal.IsNonWorkingDay(time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected Saturday to be non-working")
	}
	// 2024-01-09 is a plain Tuesday.
	if cal.IsNonWorkingDay(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected plain Tuesday to be working")
	}
}

func TestHolidaysAroundSpansYearBoundary(t *testing.T) {
	cal := NewCalendar()

	around := cal.HolidaysAround(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	for _, date := range []string{"2024-12-25", "2025-01-01", "2026-01-01"} {
		if _, ok := around[date]; !ok {
			t.Fatalf("expected %s in the 3-year window around 2025-01-02", date)
		}
	}
}
