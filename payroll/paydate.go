package payroll

import "time"

// =============================================================================
// CLOCK
// =============================================================================

// Clock supplies the current time. Inject FixedClock in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// =============================================================================
// PAYMENT DATE
// =============================================================================

const (
	// PayDay is the weekday wages are paid.
	PayDay = time.Friday

	// PayCutoffHour is the hour on PayDay from which that day's run is
	// considered closed and slips carry the previous PayDay.
	PayCutoffHour = 17

	DateLayout = "2006-01-02"
)

// PaymentDate returns the most recent PayDay relative to now as YYYY-MM-DD.
// On PayDay itself, now before PayCutoffHour yields today and now at or after
// the cutoff yields the PayDay one week earlier.
func PaymentDate(now time.Time) string {
	daysSince := (int(now.Weekday()) - int(PayDay) + 7) % 7
	if daysSince == 0 && now.Hour() >= PayCutoffHour {
		daysSince = 7
	}
	return now.AddDate(0, 0, -daysSince).Format(DateLayout)
}
