package holiday

import (
	"testing"
	"time"
)

func TestClassifyStrategicAdjacentWeekend(t *testing.T) {
	cal := NewCalendar()

	// 2024-07-12 is a Friday; the day after is a Saturday.
	got := cal.ClassifyStrategic(time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC))
	if !got.Strategic {
		t.Fatal("expected Friday before a weekend to be strategic")
	}
	if got.Reason != "il giorno successivo cade nel weekend" {
		t.Fatalf("unexpected reason: %q", got.Reason)
	}
}

func TestClassifyStrategicAdjacentHoliday(t *testing.T) {
	cal := NewCalendar()

	// 2024-04-02 is the Tuesday after Easter Monday.
	got := cal.ClassifyStrategic(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	if !got.Strategic {
		t.Fatal("expected day after Easter Monday to be strategic")
	}
	if got.Reason != "il giorno precedente è festivo" {
		t.Fatalf("unexpected reason: %q", got.Reason)
	}
}

func TestClassifyStrategicWeekendWinsOverHoliday(t *testing.T) {
	cal := NewCalendar()

	// 2024-12-08 (Immacolata) falls on a Sunday; an absence on Monday the
	// 9th must report the weekend, not the holiday.
	got := cal.ClassifyStrategic(time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC))
	if !got.Strategic {
		t.Fatal("expected Monday after a Sunday holiday to be strategic")
	}
	if got.Reason != "il giorno precedente cade nel weekend" {
		t.Fatalf("expected weekend reason to win, got %q", got.Reason)
	}
}

func TestClassifyStrategicBothSides(t *testing.T) {
	cal := NewCalendar()

	// 2024-04-26 sits between Liberazione (Apr 25) and a Saturday.
	got := cal.ClassifyStrategic(time.Date(2024, 4, 26, 0, 0, 0, 0, time.UTC))
	if !got.Strategic {
		t.Fatal("expected bridge day to be strategic")
	}
	want := "il giorno precedente è festivo; il giorno successivo cade nel weekend"
	if got.Reason != want {
		t.Fatalf("unexpected reason: %q", got.Reason)
	}
}

func TestClassifyStrategicMidweek(t *testing.T) {
	cal := NewCalendar()

	// 2024-07-10 is a Wednesday with working days on both sides.
	got := cal.ClassifyStrategic(time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC))
	if got.Strategic {
		t.Fatalf("expected midweek absence to be non-strategic, got reason %q", got.Reason)
	}
	if got.Reason != "" {
		t.Fatalf("expected empty reason, got %q", got.Reason)
	}
}
