package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time is a clock time or duration expressed as hours and minutes.
// The zero value is also used as the "no value" sentinel: a day with no
// matching swipe reports TimeOut as 00:00. Callers that must tell a real
// midnight apart from an absent value should check the surrounding record.
type Time struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func New(hour, minute int) Time {
	return Time{Hour: hour, Minute: minute}
}

// FromClock extracts the wall-clock portion of t.
func FromClock(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute()}
}

// Parse reads "HH:MM".
func Parse(s string) (Time, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Time{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("invalid minute in %q", s)
	}
	return Time{Hour: hour, Minute: minute}, nil
}

func (t Time) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

func (t Time) IsZero() bool {
	return t.Hour == 0 && t.Minute == 0
}

// Sub returns t - other as a duration, floored at zero when other is later.
func (t Time) Sub(other Time) Time {
	diff := t.TotalMinutes() - other.TotalMinutes()
	if diff <= 0 {
		return Time{}
	}
	return Time{Hour: diff / 60, Minute: diff % 60}
}

func (t Time) Add(other Time) Time {
	total := t.TotalMinutes() + other.TotalMinutes()
	return Time{Hour: total / 60, Minute: total % 60}
}

func (t Time) Before(other Time) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

func (t Time) After(other Time) bool {
	return t.TotalMinutes() > other.TotalMinutes()
}

func (t Time) Equal(other Time) bool {
	return t.TotalMinutes() == other.TotalMinutes()
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
