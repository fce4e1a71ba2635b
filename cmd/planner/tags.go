package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
)

func tagsCmd(a *app) *cobra.Command {
	var completion string
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Show tag usage, most used first",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.TagCounts(cmd.Context(), a.scope, task.TagCountsInput{
				Completion: tagfilter.Completion(strings.ToLower(completion)),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Counts) == 0 {
				fmt.Fprintln(w, "No tagged tasks")
			}
			for _, c := range out.Counts {
				fmt.Fprintf(w, "  %-14s %d\n", c.Tag, c.Count)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&completion, "completion", "", "Count only active or completed tasks")

	cmd.AddCommand(tagsListCmd(a))
	cmd.AddCommand(tagsAddCmd(a))
	cmd.AddCommand(tagsRmCmd(a))
	cmd.AddCommand(tagsSuggestCmd(a))
	return cmd
}

func printVocabulary(cmd *cobra.Command, tags []string) {
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tags, ", "))
}

func tagsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every known tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Vocabulary(cmd.Context(), a.scope)
			if err != nil {
				return err
			}
			printVocabulary(cmd, out.Tags)
			return nil
		},
	}
}

func tagsAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [tag]",
		Short: "Add a tag to the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.AddTag(cmd.Context(), a.scope, args[0])
			if err != nil {
				return err
			}
			printVocabulary(cmd, out.Tags)
			return nil
		},
	}
}

func tagsRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [tag]",
		Short: "Remove a tag from the vocabulary; tasks keep it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.RemoveTag(cmd.Context(), a.scope, args[0])
			if err != nil {
				return err
			}
			printVocabulary(cmd, out.Tags)
			return nil
		},
	}
}

func tagsSuggestCmd(a *app) *cobra.Command {
	var current []string
	cmd := &cobra.Command{
		Use:   "suggest [fragment]",
		Short: "Suggest known tags containing fragment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := task.SuggestTagsInput{Current: current}
			if len(args) == 1 {
				in.Query = args[0]
			}
			out, err := a.uc.SuggestTags(cmd.Context(), a.scope, in)
			if err != nil {
				return err
			}
			printVocabulary(cmd, out.Tags)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&current, "current", nil, "Tags already on the task")
	return cmd
}
