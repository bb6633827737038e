package core

import "time"

// Calendar carries the locale-dependent parts of date arithmetic.
// All day, month and year boundaries are computed in Location.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// dayStart returns the first instant of the given calendar day. Some zones
// start DST at midnight, so local 00:00 may not exist and time.Date would
// fold it back onto the previous day.
func (c Calendar) dayStart(y int, m time.Month, d int) time.Time {
	noon := time.Date(y, m, d, 12, 0, 0, 0, c.loc())
	y, m, d = noon.Date()
	s := time.Date(y, m, d, 0, 0, 0, 0, c.loc())
	for i := 0; i < 24 && s.Day() != d; i++ {
		s = s.Add(time.Hour)
	}
	return s
}

// StartOfDay returns the first instant of t's calendar day.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.loc()).Date()
	return c.dayStart(y, m, d)
}

// StartOfWeek returns the first day of the week containing t.
func (c Calendar) StartOfWeek(t time.Time) time.Time {
	d := c.StartOfDay(t)
	back := (int(d.Weekday()) - int(c.WeekStart) + 7) % 7
	return c.AddDays(d, -back)
}

// StartOfMonth returns the first day of the month containing t.
func (c Calendar) StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.In(c.loc()).Date()
	return c.dayStart(y, m, 1)
}

// StartOfYear returns January 1 of the year containing t.
func (c Calendar) StartOfYear(t time.Time) time.Time {
	return c.dayStart(t.In(c.loc()).Year(), time.January, 1)
}

// AddDays returns the start of the day n calendar days after t's day.
func (c Calendar) AddDays(t time.Time, n int) time.Time {
	y, m, d := t.In(c.loc()).Date()
	return c.dayStart(y, m, d+n)
}

// AddMonths moves the first day of t's month by n months.
func (c Calendar) AddMonths(t time.Time, n int) time.Time {
	y, m, _ := t.In(c.loc()).Date()
	return c.dayStart(y, m+time.Month(n), 1)
}

// AddYears moves January 1 of t's year by n years.
func (c Calendar) AddYears(t time.Time, n int) time.Time {
	return c.dayStart(t.In(c.loc()).Year()+n, time.January, 1)
}

// EndOfMonth returns the last day of the month containing t.
func (c Calendar) EndOfMonth(t time.Time) time.Time {
	return c.AddDays(c.AddMonths(t, 1), -1)
}
