package model_test

import (
	"testing"

	"github.com/giorgi26/Planner/internal/model"
)

func TestTaskEnd(t *testing.T) {
	single := model.Task{Date: "2024-01-01"}
	if single.End() != "2024-01-01" || single.IsMultiDay() {
		t.Errorf("single-day task: End=%q multi=%v", single.End(), single.IsMultiDay())
	}

	multi := model.Task{Date: "2024-01-01", EndDate: "2024-01-03"}
	if multi.End() != "2024-01-03" || !multi.IsMultiDay() {
		t.Errorf("multi-day task: End=%q multi=%v", multi.End(), multi.IsMultiDay())
	}

	same := model.Task{Date: "2024-01-01", EndDate: "2024-01-01"}
	if same.IsMultiDay() {
		t.Error("explicit equal end date is not multi-day")
	}
}

func TestColorValid(t *testing.T) {
	for _, c := range model.Palette {
		if !c.Valid() {
			t.Errorf("palette color %q reported invalid", c)
		}
	}
	if model.Color("red").Valid() || model.Color("").Valid() {
		t.Error("colors outside the palette must be invalid")
	}
}

func TestStatusIsCompleted(t *testing.T) {
	if model.StatusActive.IsCompleted() || model.StatusOverdue.IsCompleted() {
		t.Error("active/overdue are not completed states")
	}
	if !model.StatusCompletedOnTime.IsCompleted() || !model.StatusCompletedLate.IsCompleted() {
		t.Error("completed states must report completed")
	}
}
