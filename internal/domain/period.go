package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by the store.
const DateLayout = "2006-01-02"

// PeriodKind distinguishes the two board views.
type PeriodKind string

const (
	KindDaily  PeriodKind = "daily"
	KindWeekly PeriodKind = "weekly"
)

// ParsePeriodKind converts a string into a PeriodKind.
func ParsePeriodKind(s string) (PeriodKind, error) {
	switch k := PeriodKind(s); k {
	case KindDaily, KindWeekly:
		return k, nil
	}
	return "", fmt.Errorf("view %q: %w", s, ErrInvalidPeriod)
}

// Display returns the navigation label of the view kind.
func (k PeriodKind) Display() string {
	if k == KindWeekly {
		return "每周"
	}
	return "每日"
}

// AddressingKey is the period a request is scoped by.
// It is either a DateKey or a YearWeekKey.
//
// go-sumtype:decl AddressingKey
type AddressingKey interface {
	Kind() PeriodKind
	String() string
	sealedKey()
}

// DateKey addresses a daily period.
type DateKey struct {
	Date string // YYYY-MM-DD
}

func (DateKey) sealedKey() {}

// Kind returns KindDaily.
func (DateKey) Kind() PeriodKind { return KindDaily }

// String returns the date as stored.
func (k DateKey) String() string { return k.Date }

// Time returns the date at midnight UTC.
func (k DateKey) Time() time.Time {
	t, _ := time.Parse(DateLayout, k.Date)
	return t
}

// YearWeekKey addresses an ISO week.
type YearWeekKey struct {
	Year int
	Week int
}

func (YearWeekKey) sealedKey() {}

// Kind returns KindWeekly.
func (YearWeekKey) Kind() PeriodKind { return KindWeekly }

// String returns the composite "YYYY-Www" form.
func (k YearWeekKey) String() string { return fmt.Sprintf("%d-W%02d", k.Year, k.Week) }

// Display returns the board header label of the week.
func (k YearWeekKey) Display() string { return fmt.Sprintf("%d 年第 %d 周", k.Year, k.Week) }

// NewDateKey returns the DateKey of the calendar day of t.
func NewDateKey(t time.Time) DateKey {
	return DateKey{Date: t.Format(DateLayout)}
}

// ParseDateKey parses a strict YYYY-MM-DD date.
func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return DateKey{}, fmt.Errorf("date %q: %w", s, ErrInvalidPeriod)
	}
	return DateKey{Date: s}, nil
}

// ParseWeekKey parses a strict "YYYY-Www" week.
func ParseWeekKey(s string) (YearWeekKey, error) {
	yearStr, weekStr, ok := strings.Cut(s, "-W")
	if !ok {
		return YearWeekKey{}, fmt.Errorf("week %q: %w", s, ErrInvalidPeriod)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return YearWeekKey{}, fmt.Errorf("week %q: %w", s, ErrInvalidPeriod)
	}
	week, err := strconv.Atoi(weekStr)
	if err != nil || week < 1 || week > ISOWeeksInYear(year) {
		return YearWeekKey{}, fmt.Errorf("week %q: %w", s, ErrInvalidPeriod)
	}
	return YearWeekKey{Year: year, Week: week}, nil
}

// ParseSourceKey parses the origin period of a carryover task.
// A value containing "-W" is a year+week key; anything else must be a date,
// which is kept verbatim.
func ParseSourceKey(source string) (AddressingKey, error) {
	if strings.Contains(source, "-W") {
		k, err := ParseWeekKey(source)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", source, ErrMalformedSourceKey)
		}
		return k, nil
	}
	k, err := ParseDateKey(source)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", source, ErrMalformedSourceKey)
	}
	return k, nil
}

// Resolve returns the addressing key mutations of the task must use.
// Native tasks are addressed by the viewed period; carryover tasks by their origin.
func Resolve(task *Task, viewed AddressingKey) (AddressingKey, error) {
	if viewed == nil {
		return nil, ErrInvalidPeriod
	}
	if !task.Carryover {
		return viewed, nil
	}
	if task.Origin == nil {
		return nil, fmt.Errorf("task %s source %q: %w", task.ID, task.Source, ErrMalformedSourceKey)
	}
	if task.Origin.Kind() != viewed.Kind() {
		return nil, fmt.Errorf("task %s origin %s in %s view: %w", task.ID, task.Origin, viewed.Kind(), ErrPeriodKindMismatch)
	}
	return task.Origin, nil
}

// ISOWeekOf returns the ISO week containing t.
func ISOWeekOf(t time.Time) YearWeekKey {
	year, week := t.ISOWeek()
	return YearWeekKey{Year: year, Week: week}
}

// ISOWeeksInYear returns 52 or 53. December 28th always falls in the last ISO week.
func ISOWeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// WeekRange returns Monday and Sunday of the ISO week.
func WeekRange(k YearWeekKey) (time.Time, time.Time) {
	jan4 := time.Date(k.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	start := jan4.AddDate(0, 0, (k.Week-1)*7-offset)
	return start, start.AddDate(0, 0, 6)
}

// ShiftDate moves a date key by n days.
func ShiftDate(k DateKey, days int) DateKey {
	return NewDateKey(k.Time().AddDate(0, 0, days))
}

// ShiftWeek moves a week key by n weeks, wrapping across ISO years.
func ShiftWeek(k YearWeekKey, weeks int) YearWeekKey {
	start, _ := WeekRange(k)
	return ISOWeekOf(start.AddDate(0, 0, weeks*7))
}

// Shift moves any key by n of its own units.
func Shift(k AddressingKey, n int) AddressingKey {
	switch k := k.(type) {
	case DateKey:
		return ShiftDate(k, n)
	case YearWeekKey:
		return ShiftWeek(k, n)
	}
	return k
}

// CurrentKey returns today's key for the view kind.
func CurrentKey(kind PeriodKind, now time.Time) AddressingKey {
	if kind == KindWeekly {
		return ISOWeekOf(now)
	}
	return NewDateKey(now)
}
