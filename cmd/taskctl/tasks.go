package main

import (
	"TaskManager/internal/models"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func positionArg(args []string) (int, error) {
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("position must be a number, got %q", args[0])
	}
	return pos, nil
}

func listCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks, open ones first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, task := range c.session.Tasks() {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i+1, task.Label())
			}
			return nil
		},
	}
}

func showCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show [position]",
		Short: "Show every field of the task at a list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := positionArg(args)
			if err != nil {
				return err
			}
			if err := c.selectPosition(pos); err != nil {
				return err
			}

			tr := c.app.Translator
			form := c.session.Form()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", tr.T("label_title"), form.Title)
			fmt.Fprintf(out, "%s: %s\n", tr.T("label_priority"), form.Priority)
			fmt.Fprintf(out, "%s: %s\n", tr.T("label_due_date"), form.DueDate)
			fmt.Fprintf(out, "%s: %t\n", tr.T("label_completed"), form.Completed)
			return nil
		},
	}
}

// formFlags binds the task field flags shared by add and edit.
type formFlags struct {
	title    string
	priority string
	due      string
	done     bool
}

func (f *formFlags) register(cmd *cobra.Command, withTitle bool) {
	if withTitle {
		cmd.Flags().StringVarP(&f.title, "title", "t", "", "Task title")
	}
	cmd.Flags().StringVarP(&f.priority, "priority", "p", string(models.PriorityMedium), "Priority (High, Medium, Low)")
	cmd.Flags().StringVarP(&f.due, "due", "d", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&f.done, "done", false, "Mark as completed")
}

// apply copies the flags the user actually set onto form.
func (f *formFlags) apply(cmd *cobra.Command, form models.Form) models.Form {
	if cmd.Flags().Changed("title") {
		form.Title = f.title
	}
	if cmd.Flags().Changed("priority") {
		form.Priority = models.Priority(f.priority)
		if p, err := models.ParsePriority(f.priority); err == nil {
			form.Priority = p
		}
	}
	if cmd.Flags().Changed("due") {
		form.DueDate = f.due
	}
	if cmd.Flags().Changed("done") {
		form.Completed = f.done
	}
	return form
}

func addCmd(c *cli) *cobra.Command {
	flags := &formFlags{}
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.session.New()
			form := flags.apply(cmd, c.session.Form())
			form.Title = args[0]
			if err := c.session.Save(form); err != nil {
				return errReported
			}
			return nil
		},
	}
	flags.register(cmd, false)
	return cmd
}

func editCmd(c *cli) *cobra.Command {
	flags := &formFlags{}
	cmd := &cobra.Command{
		Use:   "edit [position]",
		Short: "Change fields of the task at a list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := positionArg(args)
			if err != nil {
				return err
			}
			if err := c.selectPosition(pos); err != nil {
				return err
			}
			if err := c.session.Save(flags.apply(cmd, c.session.Form())); err != nil {
				return errReported
			}
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

func doneCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "done [position]",
		Short: "Mark the task at a list position as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := positionArg(args)
			if err != nil {
				return err
			}
			if err := c.selectPosition(pos); err != nil {
				return err
			}
			form := c.session.Form()
			form.Completed = true
			if err := c.session.Save(form); err != nil {
				return errReported
			}
			return nil
		},
	}
}

func deleteCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [position]",
		Short: "Delete the task at a list position after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := positionArg(args)
			if err != nil {
				return err
			}
			if err := c.selectPosition(pos); err != nil {
				return err
			}
			if err := c.session.Delete(); err != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&c.assumeYes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func statsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := c.app.DB.GetTaskStats(time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.app.Translator.TData("stats_summary", map[string]any{
				"Total":     stats.TotalTasks,
				"Completed": stats.CompletedTasks,
				"Open":      stats.OpenTasks,
				"Rate":      fmt.Sprintf("%.1f", stats.CompletionRate()),
				"High":      stats.HighOpen,
				"Medium":    stats.MediumOpen,
				"Low":       stats.LowOpen,
				"Overdue":   stats.OverdueTasks,
			}))
			return nil
		},
	}
}
