// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/weightlog/schema"
)

// bucketLabel formats a bucket key as a day for week and month charts
// and as a month for year and total charts.
func bucketLabel(key time.Time, period schema.Period, loc *time.Location) string {
	switch period {
	case schema.YearPeriod, schema.TotalPeriod:
		return key.In(loc).Format("Jan 2006")
	default:
		return key.In(loc).Format("Mon 2 Jan")
	}
}

// tickLabel formats an axis tick in the style of the period.
func tickLabel(t time.Time, period schema.Period, loc *time.Location) string {
	switch period {
	case schema.WeekPeriod:
		return t.In(loc).Format("Mon")
	case schema.MonthPeriod:
		return t.In(loc).Format("2 Jan")
	case schema.YearPeriod:
		return t.In(loc).Format("Jan")
	default:
		return t.In(loc).Format("Jan 2006")
	}
}
