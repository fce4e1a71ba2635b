package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
)

const timestampFormat = "2006-01-02 15:04"

func tagList(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "#" + strings.Join(tags, " #")
}

// printLine writes one task row: when, title, tags, status and id.
func printLine(w io.Writer, when string, v task.TaskView) {
	fmt.Fprintf(w, "  %-15s  %s", when, v.Task.Title)
	if tags := tagList(v.Task.Tags); tags != "" {
		fmt.Fprintf(w, "  %s", tags)
	}
	fmt.Fprintf(w, "  [%s]  %s\n", v.Status, v.Task.ID)
}

func span(t model.Task) string {
	if t.IsMultiDay() {
		return fmt.Sprintf("%s %s - %s %s", t.Date, t.StartTime, t.End(), t.EndTime)
	}
	return fmt.Sprintf("%s %s - %s", t.Date, t.StartTime, t.EndTime)
}

func printDetail(w io.Writer, v task.TaskView) {
	t := v.Task
	fmt.Fprintf(w, "%s  [%s]\n", t.Title, v.Status)
	fmt.Fprintf(w, "  id:      %s\n", t.ID)
	fmt.Fprintf(w, "  when:    %s\n", span(t))
	fmt.Fprintf(w, "  color:   %s\n", t.Color)
	if tags := tagList(t.Tags); tags != "" {
		fmt.Fprintf(w, "  tags:    %s\n", tags)
	}
	if t.Description != "" {
		fmt.Fprintf(w, "  notes:   %s\n", t.Description)
	}
	if t.CompletedAt != nil {
		fmt.Fprintf(w, "  done:    %s\n", t.CompletedAt.Format(timestampFormat))
	}
	if t.PomodoroSessions > 0 {
		fmt.Fprintf(w, "  focus:   %d sessions, %d min\n", t.PomodoroSessions, t.TimeSpent/60)
	}
	if len(t.Comments) > 0 {
		fmt.Fprintln(w, "  comments:")
		for _, c := range t.Comments {
			fmt.Fprintf(w, "    %s  %s: %s\n", c.Timestamp.Format(timestampFormat), c.AuthorName, c.Text)
		}
	}
}

func printAdded(w io.Writer, added []string) {
	if len(added) > 0 {
		fmt.Fprintf(w, "New tags: %s\n", strings.Join(added, ", "))
	}
}
