package pipeline

import (
	"sort"
	"strings"
	"time"

	"salon-analytics/internal/model"
)

// Business hours are a policy constant, not derived from data.
const (
	defaultBusinessOpen  = 8 * 60  // 08:00
	defaultBusinessClose = 23 * 60 // 23:00
)

var (
	businessOpen  = defaultBusinessOpen
	businessClose = defaultBusinessClose
)

// SetBusinessWindow overrides the business-hours window from "HH:MM" bounds.
// Unparseable or inverted bounds leave the defaults in place.
func SetBusinessWindow(open, close string) {
	o, okOpen := ParseClockTime(open)
	c, okClose := ParseClockTime(close)
	if !okOpen || !okClose || c <= o {
		return
	}
	businessOpen, businessClose = o, c
}

type interval struct {
	start, end int // minutes since midnight
}

// occupancy computes the overall occupancy rate and the per-day series.
// Cancelled bookings are discarded; rows whose date or times fail to
// normalize are skipped; intervals are clipped to the business window and
// merged per day so double-booked time is only counted once.
func occupancy(records []model.Record) (float64, []model.ChartDataItem) {
	perDay := make(map[time.Time][]interval)
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.ConfirmationStatus), "cancel") {
			continue
		}
		day, ok := ParseDate(rec.TransactionDate)
		if !ok {
			continue
		}
		start, ok := ParseClockTime(rec.StartTime)
		if !ok {
			continue
		}
		end, ok := ParseClockTime(rec.EndTime)
		if !ok {
			continue
		}
		iv := clip(interval{start, end})
		if iv.end <= iv.start {
			continue
		}
		perDay[day] = append(perDay[day], iv)
	}

	businessMinutes := float64(businessClose - businessOpen)
	days := make([]time.Time, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	totalOccupied := 0.0
	daily := make([]model.ChartDataItem, 0, len(days))
	for _, day := range days {
		occupied := float64(mergedMinutes(perDay[day]))
		totalOccupied += occupied
		daily = append(daily, model.ChartDataItem{
			Name:  day.Format("Jan 2"),
			Value: occupied / businessMinutes * 100,
		})
	}

	if len(days) == 0 {
		return 0, daily
	}
	return totalOccupied / (float64(len(days)) * businessMinutes) * 100, daily
}

func clip(iv interval) interval {
	if iv.start < businessOpen {
		iv.start = businessOpen
	}
	if iv.end > businessClose {
		iv.end = businessClose
	}
	return iv
}

// mergedMinutes sorts the day's intervals by start and collapses overlapping
// or touching intervals into maximal spans before summing their durations.
func mergedMinutes(ivs []interval) int {
	if len(ivs) == 0 {
		return 0
	}
	sorted := make([]interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	total := 0
	span := sorted[0]
	for _, iv := range sorted[1:] {
		if iv.start <= span.end {
			if iv.end > span.end {
				span.end = iv.end
			}
			continue
		}
		total += span.end - span.start
		span = iv
	}
	return total + span.end - span.start
}
