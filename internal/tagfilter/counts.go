package tagfilter

import (
	"sort"

	"github.com/giorgi26/Planner/internal/model"
)

// Completion restricts which tasks contribute to tag counts.
type Completion string

const (
	CompletionAny           Completion = ""
	CompletionOnlyActive    Completion = "active"
	CompletionOnlyCompleted Completion = "completed"
)

// Valid reports whether c is a known restriction.
func (c Completion) Valid() bool {
	switch c {
	case CompletionAny, CompletionOnlyActive, CompletionOnlyCompleted:
		return true
	}
	return false
}

func (c Completion) admits(t model.Task) bool {
	switch c {
	case CompletionOnlyActive:
		return !t.Completed
	case CompletionOnlyCompleted:
		return t.Completed
	default:
		return true
	}
}

// Count is the number of userID's tasks carrying Tag.
type Count struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// UsageCounts counts tag occurrences over userID's tasks admitted by
// completion. Tags that never occur are absent. The result is ordered by
// count, highest first, with ties kept in first-encounter order.
func UsageCounts(tasks []model.Task, userID string, completion Completion) []Count {
	index := make(map[string]int)
	var counts []Count

	for _, t := range tasks {
		if t.CreatedByUserID != userID || !completion.admits(t) {
			continue
		}
		for _, tag := range t.Tags {
			i, ok := index[tag]
			if !ok {
				i = len(counts)
				index[tag] = i
				counts = append(counts, Count{Tag: tag})
			}
			counts[i].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
