package booking

import (
	"fmt"
	"regexp"
)

// The booking calendar is simplified: every month has 30 days, every
// year 360. All range arithmetic below runs on that model, so a date
// like 2024-01-31 does not exist here. Swapping in real calendar math
// means replacing dayNumber and AddDays only.
const (
	daysPerMonth = 30
	daysPerYear  = 360
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a calendar day on the simplified booking calendar.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate accepts only the fixed YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	if !datePattern.MatchString(s) {
		return Date{}, ErrInvalidDateFormat
	}
	var d Date
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &d.Year, &d.Month, &d.Day); err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > daysPerMonth {
		return Date{}, ErrInvalidDateFormat
	}
	return d, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) dayNumber() int {
	return d.Year*daysPerYear + (d.Month-1)*daysPerMonth + (d.Day - 1)
}

func (d Date) Before(o Date) bool {
	return d.dayNumber() < o.dayNumber()
}

// AddDays moves the date forward n days, rolling months and years over
// at 30 and 360.
func (d Date) AddDays(n int) Date {
	total := d.dayNumber() + n
	rem := total % daysPerYear
	return Date{
		Year:  total / daysPerYear,
		Month: rem/daysPerMonth + 1,
		Day:   rem%daysPerMonth + 1,
	}
}

// DateRange spans Start to End, both days included.
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange parses both endpoints. Inverted ranges are not rejected
// here; that check belongs to the booking workflow.
func NewDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: s, End: e}, nil
}

// Overlaps reports whether the two ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.dayNumber() <= o.End.dayNumber() && o.Start.dayNumber() <= r.End.dayNumber()
}

// DurationDays counts both endpoints.
func (r DateRange) DurationDays() int {
	return r.End.dayNumber() - r.Start.dayNumber() + 1
}
