package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd(openApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. open is called once per invocation,
// before the selected subcommand runs.
func newRootCmd(open opener) *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Planner - weekly calendar and task tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opened, err := open(*opts)
			if err != nil {
				return err
			}
			*a = *opened
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.Close()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.user, "user", "u", defaultUser(), "Acting user id")
	rootCmd.PersistentFlags().StringVar(&opts.name, "name", "", "Display name used on comments (default: the user id)")
	rootCmd.PersistentFlags().StringVar(&opts.db, "db", "", "SQLite file to use instead of the configured storage")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(weekCmd(a))
	rootCmd.AddCommand(agendaCmd(a))
	rootCmd.AddCommand(historyCmd(a))
	rootCmd.AddCommand(addCmd(a))
	rootCmd.AddCommand(editCmd(a))
	rootCmd.AddCommand(showCmd(a))
	rootCmd.AddCommand(doneCmd(a))
	rootCmd.AddCommand(toggleCmd(a))
	rootCmd.AddCommand(rmCmd(a))
	rootCmd.AddCommand(commentCmd(a))
	rootCmd.AddCommand(pomodoroCmd(a))
	rootCmd.AddCommand(tagsCmd(a))
	rootCmd.AddCommand(exportCmd(a))

	return rootCmd
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
