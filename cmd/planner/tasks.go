package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
)

// taskFlags are the editable fields shared by add and edit.
type taskFlags struct {
	title       string
	description string
	date        string
	endDate     string
	start       string
	end         string
	color       string
	tags        []string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.description, "description", "", "Notes shown in the detail view")
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "Start day: YYYY-MM-DD or a phrase like 'tomorrow'")
	cmd.Flags().StringVar(&f.endDate, "end-date", "", "Last day for multi-day tasks")
	cmd.Flags().StringVarP(&f.start, "start", "s", "", "Start time HH:MM")
	cmd.Flags().StringVarP(&f.end, "end", "e", "", "End time HH:MM")
	cmd.Flags().StringVarP(&f.color, "color", "c", "", "purple, blue, green, orange or pink")
	cmd.Flags().StringSliceVarP(&f.tags, "tags", "t", nil, "Tags (comma separated or repeated)")
}

// apply copies the flags the user set onto base.
func (f *taskFlags) apply(a *app, cmd *cobra.Command, base task.TaskFields) (task.TaskFields, error) {
	changed := cmd.Flags().Changed
	if f.title != "" {
		base.Title = f.title
	}
	if changed("description") {
		base.Description = f.description
	}
	if changed("date") {
		key, err := a.dayKey(f.date)
		if err != nil {
			return base, err
		}
		base.Date = key
	}
	if changed("end-date") {
		key, err := a.dayKey(f.endDate)
		if err != nil {
			return base, err
		}
		base.EndDate = key
	}
	if changed("start") {
		base.StartTime = f.start
	}
	if changed("end") {
		base.EndTime = f.end
	}
	if changed("color") {
		base.Color = model.Color(strings.ToLower(strings.TrimSpace(f.color)))
	}
	if changed("tags") {
		base.Tags = f.tags
	}
	return base, nil
}

func fieldsOf(t model.Task) task.TaskFields {
	return task.TaskFields{
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		EndDate:     t.EndDate,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Color:       t.Color,
		Tags:        t.Tags,
	}
}

func addCmd(a *app) *cobra.Command {
	f := &taskFlags{}
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Schedule a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.title = strings.Join(args, " ")
			fields, err := f.apply(a, cmd, task.TaskFields{})
			if err != nil {
				return err
			}

			out, err := a.uc.Create(cmd.Context(), a.scope, task.CreateInput{TaskFields: fields})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Created %s: %s\n", out.Task.ID, out.Task.Title)
			printAdded(w, out.AddedTags)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func editCmd(a *app) *cobra.Command {
	f := &taskFlags{}
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change a task; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.uc.Detail(cmd.Context(), a.scope, args[0])
			if err != nil {
				return err
			}
			fields, err := f.apply(a, cmd, fieldsOf(current.Task))
			if err != nil {
				return err
			}

			out, err := a.uc.Update(cmd.Context(), a.scope, task.UpdateInput{ID: args[0], TaskFields: fields})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Updated %s: %s\n", out.Task.ID, out.Task.Title)
			printAdded(w, out.AddedTags)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.title, "title", "", "New title")
	f.register(cmd)
	return cmd
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a task with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Detail(cmd.Context(), a.scope, args[0])
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), out.TaskView)
			return nil
		},
	}
}

func doneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Complete(cmd.Context(), a.scope, args[0])
			if err != nil {
				return err
			}
			if !out.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s was already completed\n", out.Task.Title)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s [%s]\n", out.Task.Title, out.Status)
			return nil
		},
	}
}

func toggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [id]",
		Short: "Flip a task between open and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.ToggleCompletion(cmd.Context(), a.scope, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", out.Task.Title, out.Status)
			return nil
		},
	}
}

func rmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.uc.Delete(cmd.Context(), a.scope, task.DeleteInput{ID: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func commentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "comment [id] [text]",
		Short: "Add a comment to a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.AddComment(cmd.Context(), a.scope, task.AddCommentInput{
				ID:   args[0],
				Text: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			if !out.Added {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to add")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Commented on %s (%d comments)\n", out.Task.Title, len(out.Task.Comments))
			return nil
		},
	}
}

func pomodoroCmd(a *app) *cobra.Command {
	var minutes int
	cmd := &cobra.Command{
		Use:   "pomodoro [id]",
		Short: "Record a finished focus session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.RecordPomodoro(cmd.Context(), a.scope, task.RecordPomodoroInput{
				ID:      args[0],
				Seconds: minutes * 60,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sessions, %d min\n",
				out.Task.Title, out.Task.PomodoroSessions, out.Task.TimeSpent/60)
			return nil
		},
	}
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 25, "Length of the session")
	return cmd
}
