// Package cli turns a table of named build tasks into a cobra command.
package cli

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

// DefaultTaskName is run when no task is named on the command line.
const DefaultTaskName = "default"

// Task is one named unit of work the CLI can run.
type Task struct {
	Short string
	Desc  string
	Run   func(ctx context.Context) error
}

// TaskList maps task names to tasks.
type TaskList map[string]*Task

// NewRootCmd builds the root command. Every task becomes a subcommand, and
// the root itself accepts a task name as its only argument.
func NewRootCmd(tasks TaskList) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "stylebuild [task]",
		Short:         "Compile and minify SCSS stylesheets",
		Long:          `Compiles the configured SCSS sources to CSS, minifies them and writes them to the output directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := DefaultTaskName
			if len(args) == 1 {
				name = args[0]
			}
			return runTask(cmd.Context(), tasks, name)
		},
	}

	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		task := tasks[name]
		rootCmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: task.Short,
			Long:  task.Desc,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTask(cmd.Context(), tasks, name)
			},
		})
	}

	return rootCmd
}

func runTask(ctx context.Context, tasks TaskList, name string) error {
	task, ok := tasks[name]
	if !ok {
		return eris.Errorf("task %s not found", name)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := task.Run(ctx); err != nil {
		return eris.Wrapf(err, "task %s failed", name)
	}
	return nil
}
