package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
)

type filterFlags struct {
	status string
	tags   []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", "all", "all, active, completed or overdue")
	cmd.Flags().StringSliceVarP(&f.tags, "tags", "t", nil, "Show only tasks carrying every tag")
}

func (f *filterFlags) filter() task.Filter {
	return task.Filter{
		Status: tagfilter.StatusFilter(strings.ToLower(f.status)),
		Tags:   f.tags,
	}
}

func weekCmd(a *app) *cobra.Command {
	f := &filterFlags{}
	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Show the Monday-to-Sunday calendar",
		Long: `Show the week containing date. Date accepts YYYY-MM-DD or phrases
such as "next week", "in 2 weeks" or "next friday"; default is today.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Week(cmd.Context(), a.scope, task.WeekInput{
				Date:   strings.Join(args, " "),
				Filter: f.filter(),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Label)
			for _, d := range out.Days {
				marker := ""
				if d.IsToday {
					marker = " (today)"
				}
				fmt.Fprintf(w, "%s %s%s\n", d.Weekday, d.Key, marker)
				if len(d.Tasks) == 0 {
					fmt.Fprintln(w, "  -")
				}
				for _, ct := range d.Tasks {
					printLine(w, ct.TimeLabel, ct.TaskView)
				}
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func agendaCmd(a *app) *cobra.Command {
	f := &filterFlags{}
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show open tasks for today and later",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Agenda(cmd.Context(), a.scope, task.AgendaInput{Filter: f.filter()})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Today")
			if len(out.Today) == 0 {
				fmt.Fprintln(w, "  nothing scheduled")
			}
			for _, v := range out.Today {
				printLine(w, v.Task.StartTime+" - "+v.Task.EndTime, v)
			}
			fmt.Fprintln(w, "Upcoming")
			if len(out.Upcoming) == 0 {
				fmt.Fprintln(w, "  nothing scheduled")
			}
			for _, v := range out.Upcoming {
				printLine(w, v.Task.Date+" "+v.Task.StartTime, v)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func historyCmd(a *app) *cobra.Command {
	var tags []string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed tasks, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.History(cmd.Context(), a.scope, task.HistoryInput{Tags: tags})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d tasks completed\n", out.Count)
			for _, e := range out.Entries {
				when := ""
				if e.Task.CompletedAt != nil {
					when = e.Task.CompletedAt.In(a.dateMath.Location()).Format(timestampFormat)
				}
				fmt.Fprintf(w, "  %-16s  %-14s  %s", when, e.Label, e.Task.Title)
				if t := tagList(e.Task.Tags); t != "" {
					fmt.Fprintf(w, "  %s", t)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Show only tasks carrying every tag")
	return cmd
}
