package attendance

import (
	"time"

	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/domain/holiday"
)

// Service is the attendance aggregation engine: monthly matrices, absence
// statistics and the strategic-absence report. It only reads through the
// store; every computation is request-scoped and discarded afterwards.
type Service struct {
	Store    StoreAPI
	Calendar *holiday.Calendar
	Now      func() time.Time
}

func NewService(store StoreAPI, calendar *holiday.Calendar) *Service {
	return &Service{Store: store, Calendar: calendar, Now: time.Now}
}

// window returns the inclusive [today-windowDays, today] range, truncated to
// whole days, computed at call time.
func (s *Service) window(windowDays int) (from, to time.Time) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	now := s.Now().UTC()
	to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from = to.AddDate(0, 0, -windowDays)
	return from, to
}
