package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/highridge/payslip/payroll"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, 0, 0, time.UTC)
}

func TestPaymentDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"wednesday returns preceding friday", at(14, 10, 0), "2026-10-09"},
		{"friday 16:59 returns same friday", at(16, 16, 59), "2026-10-16"},
		{"friday 17:00 returns previous friday", at(16, 17, 0), "2026-10-09"},
		{"friday 17:01 returns previous friday", at(16, 17, 1), "2026-10-09"},
		{"friday midnight returns same friday", at(16, 0, 0), "2026-10-16"},
		{"saturday returns yesterday", at(17, 9, 0), "2026-10-16"},
		{"sunday late returns friday", at(18, 23, 59), "2026-10-16"},
		{"monday returns friday", at(12, 8, 0), "2026-10-09"},
		{"thursday returns friday six days back", time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC), "2026-10-09"},
		{"crosses year boundary", time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC), "2025-12-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payroll.PaymentDate(tt.now))
		})
	}
}

func TestPaymentDate_AlwaysAFriday(t *testing.T) {
	start := at(1, 0, 0)
	for h := 0; h < 24*21; h++ {
		now := start.Add(time.Duration(h) * time.Hour)
		got, err := time.Parse(payroll.DateLayout, payroll.PaymentDate(now))
		assert.NoError(t, err)
		assert.Equal(t, time.Friday, got.Weekday(), "now=%s", now)
		assert.False(t, got.After(now), "now=%s got=%s", now, got)
		assert.True(t, now.Sub(got) < 8*24*time.Hour, "now=%s got=%s", now, got)
	}
}

func TestFixedClock(t *testing.T) {
	now := at(14, 10, 0)
	assert.True(t, payroll.FixedClock(now).Now().Equal(now))
}
