package attendance

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

var weekdayNames = [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"}

// StrategicAbsences lists every non-vacation absence in the window flagged
// as strategic, sorted by date descending.
func (s *Service) StrategicAbsences(ctx context.Context, orgID string, windowDays int) ([]StrategicAbsence, error) {
	from, to := s.window(windowDays)
	return s.collectStrategic(ctx, orgID, from, to)
}

func (s *Service) collectStrategic(ctx context.Context, orgID string, from, to time.Time) ([]StrategicAbsence, error) {
	entries, err := s.Store.ListAttendanceEntries(ctx, orgID, from, to)
	if err != nil {
		return nil, err
	}
	employees, err := s.Store.ListEmployees(ctx, orgID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}

	var out []StrategicAbsence
	for _, entry := range entries {
		if entry.Type == AbsenceVacation {
			continue
		}
		cls := s.Calendar.ClassifyStrategic(entry.Date)
		if !cls.Strategic {
			continue
		}
		name := UnknownUserName
		if employee, ok := byID[entry.UserID]; ok {
			name = employee.FullName()
		}
		out = append(out, StrategicAbsence{
			UserID: entry.UserID,
			Name:   name,
			Date:   entry.Date,
			Type:   entry.Type,
			Reason: cls.Reason,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// RenderStrategicReport formats the window's strategic absences as a
// fixed-width plain-text report grouped by employee. Pure formatting; any
// storage error propagates unchanged.
func (s *Service) RenderStrategicReport(ctx context.Context, orgID string, windowDays int) (string, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	from, to := s.window(windowDays)
	details, err := s.collectStrategic(ctx, orgID, from, to)
	if err != nil {
		return "", err
	}

	grouped := map[string][]StrategicAbsence{}
	var order []string
	for _, detail := range details {
		if _, ok := grouped[detail.UserID]; !ok {
			order = append(order, detail.UserID)
		}
		grouped[detail.UserID] = append(grouped[detail.UserID], detail)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(grouped[order[i]]) > len(grouped[order[j]])
	})

	var b strings.Builder
	line := strings.Repeat("=", 64)
	b.WriteString(line + "\n")
	b.WriteString("RAPPORTO ASSENZE STRATEGICHE\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Periodo: %s - %s (%d giorni)\n", from.Format("02/01/2006"), to.Format("02/01/2006"), windowDays)
	fmt.Fprintf(&b, "Assenze strategiche rilevate: %d\n\n", len(details))

	b.WriteString("RIEPILOGO PER DIPENDENTE\n")
	b.WriteString(strings.Repeat("-", 64) + "\n")
	if len(order) == 0 {
		b.WriteString("Nessuna assenza strategica nel periodo.\n")
	}
	for i, userID := range order {
		fmt.Fprintf(&b, "%2d. %-40s %3d\n", i+1, grouped[userID][0].Name, len(grouped[userID]))
	}
	b.WriteString("\n")

	if len(order) > 0 {
		b.WriteString("DETTAGLIO\n")
		b.WriteString(strings.Repeat("-", 64) + "\n")
		for _, userID := range order {
			b.WriteString(grouped[userID][0].Name + "\n")
			for _, detail := range grouped[userID] {
				label := AbsenceLabels[detail.Type]
				if label == "" {
					label = detail.Type
				}
				fmt.Fprintf(&b, "  %s (%s) - %s: %s\n",
					detail.Date.Format("02/01/2006"),
					weekdayNames[int(detail.Date.Weekday())],
					label,
					detail.Reason)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("LEGENDA CODICI ASSENZA\n")
	b.WriteString(strings.Repeat("-", 64) + "\n")
	for _, code := range absenceCodeOrder {
		fmt.Fprintf(&b, "  %-5s %s\n", code, AbsenceLabels[code])
	}
	return b.String(), nil
}
