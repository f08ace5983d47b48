package utils

import (
	"fmt"
	"time"
)

// SlotRange is a half-open [Start, End) candidate schedule interval.
type SlotRange struct {
	Start time.Time
	End   time.Time
}

// BuildSlotRanges expands a date span plus a daily time window into discrete
// intervals of the given length. A window where endTime is not after
// startTime yields zero slots for that day. Dates are "2006-01-02",
// times "15:04", all in UTC.
func BuildSlotRanges(startDate, endDate, startTime, endTime string, interval time.Duration) ([]SlotRange, error) {
	firstDay, err := time.ParseInLocation("2006-01-02", startDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %v", err)
	}
	lastDay, err := time.ParseInLocation("2006-01-02", endDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %v", err)
	}
	dayStart, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %v", err)
	}
	dayEnd, err := time.Parse("15:04", endTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %v", err)
	}

	var slots []SlotRange
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		slotStart := day.Add(time.Duration(dayStart.Hour())*time.Hour + time.Duration(dayStart.Minute())*time.Minute)
		slotEnd := day.Add(time.Duration(dayEnd.Hour())*time.Hour + time.Duration(dayEnd.Minute())*time.Minute)

		for !slotStart.Add(interval).After(slotEnd) {
			slots = append(slots, SlotRange{
				Start: slotStart,
				End:   slotStart.Add(interval),
			})
			slotStart = slotStart.Add(interval)
		}
	}

	return slots, nil
}
