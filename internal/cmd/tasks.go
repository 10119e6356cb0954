package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/tui"
	"github.com/taskzilla/taskzilla-cli/internal/ux"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks",
	Long: `List, inspect, create, update, move and delete tasks.

Without --team, list shows your assigned tasks across all teams.

Examples:
  taskzilla tasks list
  taskzilla tasks list --team 4f6b... --status in_progress
  taskzilla tasks create --team 4f6b... --title "Fix the build" --priority high
  taskzilla tasks move 9c1d... completed
  taskzilla tasks assign 9c1d... --user 7 --user 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	taskTeam        string
	taskTitle       string
	taskDescription string
	taskPriority    string
	taskStatus      string
	taskDueDate     string
	taskSearch      string
	taskDueFrom     string
	taskDueTo       string
	taskAssignees   []string
	taskUsers       []string
	taskDeleteForce bool
)

func taskListFilters() api.TaskFilters {
	return api.TaskFilters{
		Status:      api.TaskStatus(taskStatus),
		Priority:    api.TaskPriority(taskPriority),
		Search:      taskSearch,
		DueDateFrom: taskDueFrom,
		DueDateTo:   taskDueTo,
	}
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks, or a team's with --team",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		filters := taskListFilters()
		var tasks []api.Task
		if taskTeam != "" {
			tasks, err = app.Services.Tasks.ForTeam(cmd.Context(), taskTeam, filters)
		} else {
			tasks, err = app.Services.Tasks.My(cmd.Context(), filters)
		}
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TaskList{Tasks: tasks})
	},
}

var tasksShowCmd = &cobra.Command{
	Use:   "show <uuid>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		task, err := app.Services.Tasks.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TaskDetail{Task: *task})
	},
}

var tasksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		title := taskTitle
		if title == "" {
			title, err = tui.PromptForString(tui.Prompt{Message: "Title", Required: true})
			if err != nil {
				return err
			}
		}
		priority := taskPriority
		if priority == "" {
			priority, err = tui.PromptForSelect("Priority", []string{"low", "medium", "high"})
			if err != nil {
				return err
			}
		}

		task, err := app.Services.Tasks.Create(cmd.Context(), api.CreateTaskInput{
			Title:       title,
			Description: taskDescription,
			Priority:    api.TaskPriority(priority),
			Status:      api.TaskStatus(taskStatus),
			DueDate:     taskDueDate,
			TeamID:      taskTeam,
			AssigneeIDs: taskAssignees,
		})
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TaskDetail{Task: *task})
	},
}

var tasksUpdateCmd = &cobra.Command{
	Use:   "update <uuid>",
	Short: "Edit a task's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		task, err := app.Services.Tasks.Update(cmd.Context(), args[0], api.UpdateTaskInput{
			Title:       taskTitle,
			Description: taskDescription,
			Priority:    api.TaskPriority(taskPriority),
			Status:      api.TaskStatus(taskStatus),
			DueDate:     taskDueDate,
		})
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TaskDetail{Task: *task})
	},
}

var tasksMoveCmd = &cobra.Command{
	Use:   "move <uuid> <status>",
	Short: "Move a task to pending, in_progress or completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		status := api.TaskStatus(args[1])
		if !status.Valid() {
			return fmt.Errorf("invalid status %q (expected pending, in_progress or completed)", args[1])
		}
		task, err := app.Services.Tasks.UpdateStatus(cmd.Context(), args[0], status)
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TaskDetail{Task: *task})
	},
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete <uuid>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		if !taskDeleteForce {
			confirmed, err := tui.PromptForConfirmation("Delete this task?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				return nil
			}
		}
		return app.Services.Tasks.Delete(cmd.Context(), args[0], taskTeam)
	},
}

var tasksAssignCmd = &cobra.Command{
	Use:   "assign <uuid>",
	Short: "Assign users to a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		task, err := app.Services.Tasks.Assign(cmd.Context(), args[0], taskUsers)
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TaskDetail{Task: *task})
	},
}

var tasksUnassignCmd = &cobra.Command{
	Use:   "unassign <uuid>",
	Short: "Remove users from a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		task, err := app.Services.Tasks.Unassign(cmd.Context(), args[0], taskUsers)
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TaskDetail{Task: *task})
	},
}

var tasksStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a team's task statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		stats, err := app.Services.Tasks.Statistics(cmd.Context(), taskTeam)
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.StatisticsView{Stats: *stats})
	},
}

func init() {
	tasksListCmd.Flags().StringVar(&taskTeam, "team", "", "list a team's tasks instead of yours")
	tasksListCmd.Flags().StringVar(&taskStatus, "status", "", "filter by status")
	tasksListCmd.Flags().StringVar(&taskPriority, "priority", "", "filter by priority")
	tasksListCmd.Flags().StringVar(&taskSearch, "search", "", "filter by title/description text")
	tasksListCmd.Flags().StringVar(&taskDueFrom, "due-from", "", "filter by due date lower bound (YYYY-MM-DD)")
	tasksListCmd.Flags().StringVar(&taskDueTo, "due-to", "", "filter by due date upper bound (YYYY-MM-DD)")

	tasksCreateCmd.Flags().StringVar(&taskTeam, "team", "", "team the task belongs to")
	tasksCreateCmd.Flags().StringVar(&taskTitle, "title", "", "task title")
	tasksCreateCmd.Flags().StringVar(&taskDescription, "description", "", "task description")
	tasksCreateCmd.Flags().StringVar(&taskPriority, "priority", "", "low, medium or high")
	tasksCreateCmd.Flags().StringVar(&taskStatus, "status", "", "initial status (default pending)")
	tasksCreateCmd.Flags().StringVar(&taskDueDate, "due", "", "due date (YYYY-MM-DD)")
	tasksCreateCmd.Flags().StringSliceVar(&taskAssignees, "assignee", nil, "user id to assign (repeatable)")
	_ = tasksCreateCmd.MarkFlagRequired("team")

	tasksUpdateCmd.Flags().StringVar(&taskTitle, "title", "", "new title")
	tasksUpdateCmd.Flags().StringVar(&taskDescription, "description", "", "new description")
	tasksUpdateCmd.Flags().StringVar(&taskPriority, "priority", "", "new priority")
	tasksUpdateCmd.Flags().StringVar(&taskStatus, "status", "", "new status")
	tasksUpdateCmd.Flags().StringVar(&taskDueDate, "due", "", "new due date (YYYY-MM-DD)")

	tasksDeleteCmd.Flags().BoolVarP(&taskDeleteForce, "force", "f", false, "skip confirmation")
	tasksDeleteCmd.Flags().StringVar(&taskTeam, "team", "", "team the task belongs to (narrows cache refresh)")

	tasksAssignCmd.Flags().StringSliceVar(&taskUsers, "user", nil, "user id (repeatable)")
	_ = tasksAssignCmd.MarkFlagRequired("user")
	tasksUnassignCmd.Flags().StringSliceVar(&taskUsers, "user", nil, "user id (repeatable)")
	_ = tasksUnassignCmd.MarkFlagRequired("user")

	tasksStatsCmd.Flags().StringVar(&taskTeam, "team", "", "team uuid")
	_ = tasksStatsCmd.MarkFlagRequired("team")

	tasksCmd.AddCommand(tasksListCmd, tasksShowCmd, tasksCreateCmd, tasksUpdateCmd,
		tasksMoveCmd, tasksDeleteCmd, tasksAssignCmd, tasksUnassignCmd, tasksStatsCmd)
	rootCmd.AddCommand(tasksCmd)
}
