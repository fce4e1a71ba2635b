package schedule

import (
	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/pkg/datemath"
)

// Segment says which part of a task's span a calendar day shows.
type Segment string

const (
	SegmentSingle Segment = "single"
	SegmentStart  Segment = "start"
	SegmentMiddle Segment = "middle"
	SegmentEnd    Segment = "end"
)

// Geometry is the vertical placement of a task card in a 1440-minute day column.
type Geometry struct {
	TopMinutes    int `json:"top"`
	HeightMinutes int `json:"height"`
}

// OnDay reports whether the task is visible on dayKey. Keys are fixed-width
// and zero padded, so string order is calendar order.
func OnDay(t model.Task, dayKey string) bool {
	return t.Date <= dayKey && dayKey <= t.End()
}

// SegmentOn classifies dayKey relative to the task's first and last day.
func SegmentOn(t model.Task, dayKey string) Segment {
	isStart := t.Date == dayKey
	isEnd := t.End() == dayKey

	switch {
	case isStart && isEnd:
		return SegmentSingle
	case isStart:
		return SegmentStart
	case isEnd:
		return SegmentEnd
	default:
		return SegmentMiddle
	}
}

// Layout computes where the task sits in the column for dayKey.
// First days run to midnight, last days start at midnight and middle days
// fill the column. Malformed clocks are read as 00:00.
func Layout(t model.Task, dayKey string) Geometry {
	start, _ := datemath.ParseClock(t.StartTime)
	end, _ := datemath.ParseClock(t.EndTime)

	switch SegmentOn(t, dayKey) {
	case SegmentSingle:
		return Geometry{TopMinutes: start, HeightMinutes: max(end-start, 0)}
	case SegmentStart:
		return Geometry{TopMinutes: start, HeightMinutes: datemath.MinutesPerDay - start}
	case SegmentEnd:
		return Geometry{TopMinutes: 0, HeightMinutes: end}
	default:
		return Geometry{TopMinutes: 0, HeightMinutes: datemath.MinutesPerDay}
	}
}

// TimeLabel is the short time caption shown on a card for dayKey.
func TimeLabel(t model.Task, dayKey string) string {
	if !t.IsMultiDay() {
		return t.StartTime + " - " + t.EndTime
	}
	switch SegmentOn(t, dayKey) {
	case SegmentStart:
		return "Starts " + t.StartTime
	case SegmentEnd:
		return "Ends " + t.EndTime
	default:
		return "Full Day"
	}
}
