package holiday

import (
	"strings"
	"time"
)

// Classification is the outcome of checking one absence date against the
// days around it.
type Classification struct {
	Strategic bool   `json:"strategic"`
	Reason    string `json:"reason,omitempty"`
}

// ClassifyStrategic reports whether an absence on the given date sits next to
// a non-working day. The check is type-agnostic: callers exclude vacation
// entries before calling. Per side the weekend check wins over the holiday
// check, so a holiday falling on a Sunday is reported as weekend.
func (c *Calendar) ClassifyStrategic(t time.Time) Classification {
	holidays := c.HolidaysAround(t)

	var reasons []string
	if clause := sideReason(t.AddDate(0, 0, -1), "il giorno precedente", holidays); clause != "" {
		reasons = append(reasons, clause)
	}
	if clause := sideReason(t.AddDate(0, 0, 1), "il giorno successivo", holidays); clause != "" {
		reasons = append(reasons, clause)
	}

	if len(reasons) == 0 {
		return Classification{}
	}
	return Classification{Strategic: true, Reason: strings.Join(reasons, "; ")}
}

func sideReason(day time.Time, label string, holidays map[string]struct{}) string {
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return label + " cade nel weekend"
	}
	if _, ok := holidays[ISO(day)]; ok {
		return label + " è festivo"
	}
	return ""
}
