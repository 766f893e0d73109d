package pipeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date order hints for slash-delimited dates where both readings are valid.
const (
	DateOrderDayFirst   = "day-first"
	DateOrderMonthFirst = "month-first"
)

// dateOrder is a dataset-level policy, not per-call state. Without a hint,
// genuinely ambiguous dates like "03/04/2024" are rejected instead of
// guessed.
var dateOrder string

// SetDateOrder sets the day-first/month-first hint for delimited dates.
// Anything other than the two known hints clears it.
func SetDateOrder(order string) {
	switch order {
	case DateOrderDayFirst, DateOrderMonthFirst:
		dateOrder = order
	default:
		dateOrder = ""
	}
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])?$`)

// ParseClockTime converts "H:MM", "HH:MM", optionally suffixed with AM/PM,
// to minutes since midnight. A bare value without a meridiem is taken as
// already 24-hour. Returns false for anything that doesn't match.
func ParseClockTime(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return 0, false
	}
	switch strings.ToUpper(m[3]) {
	case "":
		if hour > 23 {
			return 0, false
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour < 12 {
			hour += 12
		}
	}
	return hour*60 + minute, true
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate normalizes a date string to midnight UTC of its calendar day.
// Known layouts are tried first; delimited D/M/Y-style strings go through
// parseDelimitedDate. Returns false on total failure.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t), true
		}
	}
	return parseDelimitedDate(s)
}

// parseDelimitedDate handles "/"-, "-"- or "."-delimited dates. The day and
// month positions are accepted only when provable: one component exceeds 12,
// both components are equal, or the configured date-order hint decides.
func parseDelimitedDate(s string) (time.Time, bool) {
	var sep string
	for _, candidate := range []string{"/", "-", "."} {
		if strings.Count(s, candidate) == 2 {
			sep = candidate
			break
		}
	}
	if sep == "" {
		return time.Time{}, false
	}
	parts := strings.Split(s, sep)
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return time.Time{}, false
		}
		nums[i] = n
	}

	// Year-first (ISO order with a non-standard separator).
	if len(strings.TrimSpace(parts[0])) == 4 {
		return makeDate(nums[0], nums[1], nums[2])
	}

	year := nums[2]
	if year < 100 {
		year += 2000
	}
	a, b := nums[0], nums[1]
	switch {
	case a > 12 && b <= 12:
		return makeDate(year, b, a)
	case b > 12 && a <= 12:
		return makeDate(year, a, b)
	case a == b:
		return makeDate(year, a, b)
	case dateOrder == DateOrderDayFirst:
		return makeDate(year, b, a)
	case dateOrder == DateOrderMonthFirst:
		return makeDate(year, a, b)
	default:
		// Both readings are plausible and no hint is set.
		return time.Time{}, false
	}
}

func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject that.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LeadTimeDays returns the absolute difference in days between the booking
// and transaction dates, or false if either fails to normalize.
func LeadTimeDays(bookingDate, transactionDate string) (float64, bool) {
	booked, ok := ParseDate(bookingDate)
	if !ok {
		return 0, false
	}
	served, ok := ParseDate(transactionDate)
	if !ok {
		return 0, false
	}
	return math.Abs(served.Sub(booked).Hours() / 24), true
}
