package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
)

// Normalize derives order_hour from the elapsed-since-midnight order time,
// truncates the order date to a calendar date, and validates prices. It is
// total: it never drops rows, only the joiner does that.
func Normalize(rows []domain.JoinedRow) ([]domain.JoinedRow, error) {
	out := make([]domain.JoinedRow, len(rows))
	for i, row := range rows {
		elapsed, err := parseTimeOfDay(row.OrderTime)
		if err != nil {
			return nil, fmt.Errorf("order line %d: %w", row.OrderLineID, err)
		}
		row.OrderHour = int(elapsed / time.Hour)

		d := row.OrderDate
		row.OrderDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

		if row.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %q has price %s",
				domain.ErrInvalidPrice, row.Name, row.UnitPrice)
		}
		out[i] = row
	}
	return out, nil
}

// parseTimeOfDay parses "HH:MM:SS" (seconds optional) as elapsed time since
// midnight. The value is a duration within one day, not a wall-clock instant,
// so anything outside [0h, 24h) is rejected.
func parseTimeOfDay(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidOrderTime, s)
	}

	fields := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidOrderTime, s)
		}
		fields[i] = n
	}
	hours, minutes, seconds := fields[0], fields[1], fields[2]
	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidOrderTime, s)
	}

	elapsed := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	if elapsed >= 24*time.Hour {
		return 0, fmt.Errorf("%w: %q exceeds one day", domain.ErrInvalidOrderTime, s)
	}
	return elapsed, nil
}
