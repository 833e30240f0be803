package sports

import "time"

// ResolvePeriod maps a symbolic period to an inclusive date range relative
// to ref. An unspecified period resolves to yesterday: a question asked
// without a stated time is about the most recently completed window.
func ResolvePeriod(period Period, ref time.Time) (time.Time, time.Time) {
	switch period {
	case PeriodToday:
		return ref, ref
	case PeriodWeekend:
		// The weekend that just concluded. A Saturday ref steps back a
		// full week rather than starting a range that is still in play.
		offset := (int(ref.Weekday()) + 1) % 7
		if offset == 0 {
			offset = 7
		}
		saturday := ref.AddDate(0, 0, -offset)
		return saturday, saturday.AddDate(0, 0, 1)
	default:
		// yesterday and unspecified
		d := ref.AddDate(0, 0, -1)
		return d, d
	}
}
