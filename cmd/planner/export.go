package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

type exportDoc struct {
	ExportedAt      time.Time    `json:"exportedAt" yaml:"exported_at"`
	User            string       `json:"user" yaml:"user"`
	PomodoroVisible bool         `json:"pomodoroVisible" yaml:"pomodoro_visible"`
	Tags            []string     `json:"tags" yaml:"tags"`
	Tasks           []exportTask `json:"tasks" yaml:"tasks"`
}

type exportTask struct {
	ID               string          `json:"id" yaml:"id"`
	Title            string          `json:"title" yaml:"title"`
	Description      string          `json:"description,omitempty" yaml:"description,omitempty"`
	Date             string          `json:"date" yaml:"date"`
	EndDate          string          `json:"endDate" yaml:"end_date"`
	StartTime        string          `json:"startTime" yaml:"start_time"`
	EndTime          string          `json:"endTime" yaml:"end_time"`
	Color            string          `json:"color" yaml:"color"`
	Tags             []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty" yaml:"completed_at,omitempty"`
	Comments         []exportComment `json:"comments,omitempty" yaml:"comments,omitempty"`
	PomodoroSessions int             `json:"pomodoroSessions,omitempty" yaml:"pomodoro_sessions,omitempty"`
	TimeSpent        int             `json:"timeSpent,omitempty" yaml:"time_spent,omitempty"`
}

type exportComment struct {
	Author    string    `json:"author" yaml:"author"`
	Text      string    `json:"text" yaml:"text"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

func newExportDoc(sc model.Scope, out task.ExportOutput, now time.Time) exportDoc {
	doc := exportDoc{
		ExportedAt:      now,
		User:            sc.UserID,
		PomodoroVisible: out.PomodoroVisible,
		Tags:            out.Tags,
		Tasks:           make([]exportTask, 0, len(out.Tasks)),
	}
	for _, t := range out.Tasks {
		et := exportTask{
			ID:               t.ID,
			Title:            t.Title,
			Description:      t.Description,
			Date:             t.Date,
			EndDate:          t.End(),
			StartTime:        t.StartTime,
			EndTime:          t.EndTime,
			Color:            string(t.Color),
			Tags:             t.Tags,
			CompletedAt:      t.CompletedAt,
			PomodoroSessions: t.PomodoroSessions,
			TimeSpent:        t.TimeSpent,
		}
		for _, c := range t.Comments {
			et.Comments = append(et.Comments, exportComment{Author: c.AuthorName, Text: c.Text, Timestamp: c.Timestamp})
		}
		doc.Tasks = append(doc.Tasks, et)
	}
	return doc
}

func writeExport(w io.Writer, format string, doc exportDoc) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatYAML, formatJSON)
	}
}

func exportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every task, the tag vocabulary and preferences to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != formatYAML && format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatYAML, formatJSON)
			}

			out, err := a.uc.Export(cmd.Context(), a.scope)
			if err != nil {
				return err
			}
			return writeExport(cmd.OutOrStdout(), format, newExportDoc(a.scope, out, a.now()))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "yaml or json")
	return cmd
}
