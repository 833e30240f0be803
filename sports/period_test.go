package sports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod(t *testing.T) {
	wednesday := date(2025, time.August, 20)

	tests := []struct {
		name      string
		period    Period
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today",
			period:    PeriodToday,
			ref:       wednesday,
			wantStart: wednesday,
			wantEnd:   wednesday,
		},
		{
			name:      "yesterday",
			period:    PeriodYesterday,
			ref:       wednesday,
			wantStart: date(2025, time.August, 19),
			wantEnd:   date(2025, time.August, 19),
		},
		{
			name:      "weekend from a wednesday is the saturday-sunday just before",
			period:    PeriodWeekend,
			ref:       wednesday,
			wantStart: date(2025, time.August, 16),
			wantEnd:   date(2025, time.August, 17),
		},
		{
			name:      "weekend on a saturday steps back a full week",
			period:    PeriodWeekend,
			ref:       date(2025, time.August, 23),
			wantStart: date(2025, time.August, 16),
			wantEnd:   date(2025, time.August, 17),
		},
		{
			name:      "weekend on a sunday is yesterday and today",
			period:    PeriodWeekend,
			ref:       date(2025, time.August, 24),
			wantStart: date(2025, time.August, 23),
			wantEnd:   date(2025, time.August, 24),
		},
		{
			name:      "weekend on a monday is the weekend just concluded",
			period:    PeriodWeekend,
			ref:       date(2025, time.August, 25),
			wantStart: date(2025, time.August, 23),
			wantEnd:   date(2025, time.August, 24),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolvePeriod(tt.period, tt.ref)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolvePeriod_UnspecifiedEqualsYesterday(t *testing.T) {
	// one ref per weekday
	for d := 18; d <= 24; d++ {
		ref := date(2025, time.August, d)
		ys, ye := ResolvePeriod(PeriodYesterday, ref)
		us, ue := ResolvePeriod(PeriodUnspecified, ref)
		assert.Equal(t, ys, us, "start for ref %s", ref)
		assert.Equal(t, ye, ue, "end for ref %s", ref)
	}
}

func TestResolvePeriod_StartNeverAfterEnd(t *testing.T) {
	periods := []Period{PeriodToday, PeriodYesterday, PeriodWeekend, PeriodUnspecified}
	for _, p := range periods {
		for d := 1; d <= 14; d++ {
			start, end := ResolvePeriod(p, date(2025, time.September, d))
			assert.False(t, start.After(end), "period %s ref day %d", p, d)
		}
	}
}
