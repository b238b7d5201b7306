package registry

import (
	"fmt"
	"sort"
	"time"
)

// TimeSlot represents the meeting time of a section, such as MWF
// 14:00-14:50. Times are kept in 24-hour form. A TimeSlot is immutable
// after construction.
type TimeSlot struct {
	days        map[time.Weekday]struct{}
	startHour   int
	startMinute int
	endHour     int
	endMinute   int
}

// Common meeting-day patterns.
var (
	MondayWednesdayFriday = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	MondayWednesday       = []time.Weekday{time.Monday, time.Wednesday}
	TuesdayThursday       = []time.Weekday{time.Tuesday, time.Thursday}
)

// NewTimeSlot validates and builds a TimeSlot. The slot must meet on at
// least one day, hours and minutes must be in range, and the start time
// must fall strictly before the end time.
func NewTimeSlot(days []time.Weekday, startHour, startMinute, endHour, endMinute int) (TimeSlot, error) {
	if len(days) == 0 {
		return TimeSlot{}, fmt.Errorf("time slot must meet on at least one day of the week")
	}
	if startHour < 0 || startHour > 23 {
		return TimeSlot{}, fmt.Errorf("invalid start hour: %d - must be 0-23 inclusive", startHour)
	}
	if endHour < 0 || endHour > 23 {
		return TimeSlot{}, fmt.Errorf("invalid end hour: %d - must be 0-23 inclusive", endHour)
	}
	if startMinute < 0 || startMinute > 59 {
		return TimeSlot{}, fmt.Errorf("invalid start minute: %d - must be 0-59 inclusive", startMinute)
	}
	if endMinute < 0 || endMinute > 59 {
		return TimeSlot{}, fmt.Errorf("invalid end minute: %d - must be 0-59 inclusive", endMinute)
	}
	start := timeInMinutes(startHour, startMinute)
	end := timeInMinutes(endHour, endMinute)
	if start >= end {
		return TimeSlot{}, fmt.Errorf("invalid time slot: start time %02d:%02d is not before end time %02d:%02d",
			startHour, startMinute, endHour, endMinute)
	}

	daySet := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		daySet[d] = struct{}{}
	}
	return TimeSlot{
		days:        daySet,
		startHour:   startHour,
		startMinute: startMinute,
		endHour:     endHour,
		endMinute:   endMinute,
	}, nil
}

// Days returns the meeting days in Sunday-first order.
func (t TimeSlot) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(t.days))
	for d := range t.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

func (t TimeSlot) StartHour() int   { return t.startHour }
func (t TimeSlot) StartMinute() int { return t.startMinute }
func (t TimeSlot) EndHour() int     { return t.endHour }
func (t TimeSlot) EndMinute() int   { return t.endMinute }

// OverlapsWith reports whether two time slots conflict. Slots with no
// shared meeting day never overlap. On shared days the slots are treated
// as half-open minute intervals [start, end), so a slot ending at 9:50
// does not conflict with one starting at 9:50.
func (t TimeSlot) OverlapsWith(other TimeSlot) bool {
	shared := false
	for d := range t.days {
		if _, ok := other.days[d]; ok {
			shared = true
			break
		}
	}
	if !shared {
		return false
	}

	thisStart := timeInMinutes(t.startHour, t.startMinute)
	thisEnd := timeInMinutes(t.endHour, t.endMinute)
	otherStart := timeInMinutes(other.startHour, other.startMinute)
	otherEnd := timeInMinutes(other.endHour, other.endMinute)

	return (otherStart <= thisStart && thisStart < otherEnd) ||
		(thisStart <= otherStart && otherStart < thisEnd)
}

func (t TimeSlot) String() string {
	days := t.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	return fmt.Sprintf("%v %02d:%02d-%02d:%02d", names, t.startHour, t.startMinute, t.endHour, t.endMinute)
}

func timeInMinutes(hour, minutes int) int {
	return 60*hour + minutes
}
