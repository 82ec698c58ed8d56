package holiday

import (
	"fmt"
	"sync"
	"time"
)

// Calendar computes the Italian public holidays for a year and memoizes the
// result for the lifetime of the process. Holiday sets are pure functions of
// the year, so cached entries are never evicted or rewritten.
type Calendar struct {
	mu     sync.RWMutex
	byYear map[int]map[string]struct{}
}

func NewCalendar() *Calendar {
	return &Calendar{byYear: map[int]map[string]struct{}{}}
}

// fixed month/day holidays: Capodanno, Epifania, Liberazione, Festa del
// Lavoro, Festa della Repubblica, Ferragosto, Ognissanti, Immacolata,
// Natale, Santo Stefano.
var fixedHolidays = [][2]int{
	{1, 1},
	{1, 6},
	{4, 25},
	{5, 1},
	{6, 2},
	{8, 15},
	{11, 1},
	{12, 8},
	{12, 25},
	{12, 26},
}

// HolidaysForYear returns the set of public holiday dates for the given year
// as ISO YYYY-MM-DD strings. The returned map is a copy; callers may keep or
// modify it without affecting the cache.
func (c *Calendar) HolidaysForYear(year int) map[string]struct{} {
	c.mu.RLock()
	cached, ok := c.byYear[year]
	c.mu.RUnlock()
	if !ok {
		cached = computeHolidays(year)
		c.mu.Lock()
		c.byYear[year] = cached
		c.mu.Unlock()
	}

	out := make(map[string]struct{}, len(cached))
	for date := range cached {
		out[date] = struct{}{}
	}
	return out
}

func computeHolidays(year int) map[string]struct{} {
	set := make(map[string]struct{}, len(fixedHolidays)+2)
	for _, md := range fixedHolidays {
		set[isoDate(year, md[0], md[1])] = struct{}{}
	}

	easterMonth, easterDay := easterSunday(year)
	easter := time.Date(year, time.Month(easterMonth), easterDay, 0, 0, 0, 0, time.UTC)
	set[isoDate(easter.Year(), int(easter.Month()), easter.Day())] = struct{}{}
	monday := easter.AddDate(0, 0, 1)
	set[isoDate(monday.Year(), int(monday.Month()), monday.Day())] = struct{}{}
	return set
}

// easterSunday returns the month and day of Gregorian Easter Sunday using the
// Meeus/Jones/Butcher algorithm.
func easterSunday(year int) (month, day int) {
	a := mod(year, 19)
	b := floorDiv(year, 100)
	c := mod(year, 100)
	d := b / 4
	e := mod(b, 4)
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := mod(19*a+b-d-g+15, 30)
	i := c / 4
	k := mod(c, 4)
	l := mod(32+2*e+2*i-h-k, 7)
	m := (a + 11*h + 22*l) / 451
	month = (h + l - 7*m + 114) / 31
	day = mod(h+l-7*m+114, 31) + 1
	return month, day
}

// floorDiv and mod behave consistently for negative years, which plain Go
// integer division does not.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func isoDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ISO formats a date the way holiday sets key their entries.
func ISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// HolidaysAround returns the union of the holiday sets for the year before,
// the year of, and the year after the given date. The extra years keep
// classification correct for dates near the Dec 31 / Jan 1 boundary.
func (c *Calendar) HolidaysAround(t time.Time) map[string]struct{} {
	year := t.Year()
	out := map[string]struct{}{}
	for y := year - 1; y <= year+1; y++ {
		for date := range c.HolidaysForYear(y) {
			out[date] = struct{}{}
		}
	}
	return out
}

// IsNonWorkingDay reports whether the date falls on a weekend or on a public
// holiday.
func (c *Calendar) IsNonWorkingDay(t time.Time) bool {
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	_, ok := c.HolidaysAround(t)[ISO(t)]
	return ok
}
