package allocation

import "time"

// =============================================================================
// DATE - Day-granularity point in time
// =============================================================================

// Date is a calendar day. All engine arithmetic is day-granular; hours
// and time zones play no role in billing periods.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar day (UTC).
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.t.After(other.t) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.t.Before(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) IsZero() bool      { return d.t.IsZero() }
func (d Date) Time() time.Time   { return d.t }
func (d Date) String() string    { return d.t.Format("2006-01-02") }

// Min returns the earlier of two dates.
func (d Date) Min(other Date) Date {
	if d.Before(other) {
		return d
	}
	return other
}

// Max returns the later of two dates.
func (d Date) Max(other Date) Date {
	if d.After(other) {
		return d
	}
	return other
}

// DaysBetween counts whole days from one date to another (exclusive).
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// =============================================================================
// PERIOD - Inclusive billing period [Start, End]
// =============================================================================

// Period is the inclusive date range over which consumption and
// occupancy are aggregated.
type Period struct {
	Start Date
	End   Date
}

func NewPeriod(start, end Date) Period { return Period{Start: start, End: end} }

// Valid reports whether End is not before Start.
func (p Period) Valid() bool { return !p.End.Before(p.Start) }

// Contains returns true if the date falls within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Overlaps reports whether an interval intersects the period.
// A nil end means the interval is ongoing.
func (p Period) Overlaps(start Date, end *Date) bool {
	if start.After(p.End) {
		return false
	}
	return end == nil || end.AfterOrEqual(p.Start)
}

// OverlapDays counts the days an interval shares with the period,
// inclusive on both ends. A nil interval end is treated as ongoing and
// clipped to the period end. Returns 0 for disjoint intervals.
func (p Period) OverlapDays(start Date, end *Date) int {
	overlapStart := start.Max(p.Start)
	overlapEnd := p.End
	if end != nil {
		overlapEnd = end.Min(p.End)
	}
	if overlapEnd.Before(overlapStart) {
		return 0
	}
	return DaysBetween(overlapStart, overlapEnd) + 1
}

// Days returns the inclusive length of the period in days.
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End) + 1
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
