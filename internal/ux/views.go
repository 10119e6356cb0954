package ux

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskzilla/taskzilla-cli/internal/api"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	statusStyles = map[api.TaskStatus]lipgloss.Style{
		api.TaskStatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		api.TaskStatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		api.TaskStatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}

	priorityStyles = map[api.TaskPriority]lipgloss.Style{
		api.TaskPriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		api.TaskPriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		api.TaskPriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

type styler struct {
	noColor bool
}

func (s styler) render(style lipgloss.Style, text string) string {
	if s.noColor {
		return text
	}
	return style.Render(text)
}

func (s styler) status(status api.TaskStatus) string {
	label := api.TaskStatusLabels[status]
	if label == "" {
		label = string(status)
	}
	if style, ok := statusStyles[status]; ok {
		return s.render(style, label)
	}
	return label
}

func (s styler) priority(priority api.TaskPriority) string {
	label := api.TaskPriorityLabels[priority]
	if label == "" {
		label = string(priority)
	}
	if style, ok := priorityStyles[priority]; ok {
		return s.render(style, label)
	}
	return label
}

func newTab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// TeamList renders teams as a table.
type TeamList struct {
	Teams []api.Team
}

func (v TeamList) RenderText(w io.Writer, noColor bool) error {
	if len(v.Teams) == 0 {
		_, err := fmt.Fprintln(w, "No teams yet.")
		return err
	}
	s := styler{noColor: noColor}
	tab := newTab(w)
	fmt.Fprintln(tab, s.render(headerStyle, "UUID\tNAME\tLEAD\tMEMBERS\tTASKS"))
	for _, team := range v.Teams {
		lead := team.LeadID
		if team.Lead != nil {
			lead = team.Lead.Name
		}
		fmt.Fprintf(tab, "%s\t%s\t%s\t%d\t%d\n",
			team.UUID, team.Name, lead, team.MembersCount, team.TasksCount)
	}
	return tab.Flush()
}

// TeamDetail renders one team with its members.
type TeamDetail struct {
	Team api.Team
}

func (v TeamDetail) RenderText(w io.Writer, noColor bool) error {
	s := styler{noColor: noColor}
	team := v.Team

	fmt.Fprintln(w, s.render(headerStyle, team.Name))
	fmt.Fprintf(w, "UUID: %s\n", team.UUID)
	if team.Lead != nil {
		fmt.Fprintf(w, "Lead: %s <%s>\n", team.Lead.Name, team.Lead.Email)
	}
	fmt.Fprintf(w, "Tasks: %s pending, %s in progress, %s completed\n",
		fmt.Sprint(team.PendingTasksCount), fmt.Sprint(team.InProgressTasksCount), fmt.Sprint(team.CompletedTasksCount))

	if len(team.Members) > 0 {
		fmt.Fprintln(w)
		tab := newTab(w)
		fmt.Fprintln(tab, s.render(headerStyle, "MEMBER\tEMAIL\tROLE"))
		for _, m := range team.Members {
			fmt.Fprintf(tab, "%s\t%s\t%s\n", m.Name, m.Email, m.Role)
		}
		if err := tab.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// TaskList renders tasks as a table. Overdue due dates are highlighted.
type TaskList struct {
	Tasks []api.Task
	Now   time.Time
}

func (v TaskList) RenderText(w io.Writer, noColor bool) error {
	if len(v.Tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found.")
		return err
	}
	s := styler{noColor: noColor}
	now := v.Now
	if now.IsZero() {
		now = time.Now()
	}

	tab := newTab(w)
	fmt.Fprintln(tab, s.render(headerStyle, "UUID\tTITLE\tSTATUS\tPRIORITY\tDUE\tASSIGNEES"))
	for _, task := range v.Tasks {
		due := "-"
		if task.DueDate != "" {
			due = FormatDate(task.DueDate)
			if task.Overdue(now) {
				due = s.render(overdueStyle, due+" (overdue)")
			}
		}
		assignees := "-"
		if len(task.Assignees) > 0 {
			initials := make([]string, 0, len(task.Assignees))
			for _, a := range task.Assignees {
				initials = append(initials, Initials(a.Name))
			}
			assignees = strings.Join(initials, ", ")
		}
		fmt.Fprintf(tab, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.UUID, Truncate(task.Title, 40), s.status(task.Status), s.priority(task.Priority), due, assignees)
	}
	return tab.Flush()
}

// TaskDetail renders one task in full.
type TaskDetail struct {
	Task api.Task
	Now  time.Time
}

func (v TaskDetail) RenderText(w io.Writer, noColor bool) error {
	s := styler{noColor: noColor}
	task := v.Task
	now := v.Now
	if now.IsZero() {
		now = time.Now()
	}

	fmt.Fprintln(w, s.render(headerStyle, task.Title))
	fmt.Fprintf(w, "UUID: %s\n", task.UUID)
	fmt.Fprintf(w, "Status: %s  Priority: %s\n", s.status(task.Status), s.priority(task.Priority))
	if task.DueDate != "" {
		due := FormatDate(task.DueDate)
		if task.Overdue(now) {
			due = s.render(overdueStyle, due+" (overdue)")
		}
		fmt.Fprintf(w, "Due: %s\n", due)
	}
	if task.Team != nil {
		fmt.Fprintf(w, "Team: %s\n", task.Team.Name)
	}
	if task.Creator != nil {
		fmt.Fprintf(w, "Created by: %s\n", task.Creator.Name)
	}
	if task.CreatedAt != "" {
		fmt.Fprintf(w, "Created: %s\n", s.render(dimStyle, RelativeTime(task.CreatedAt, now)))
	}
	if len(task.Assignees) > 0 {
		fmt.Fprintln(w, "Assignees:")
		for _, a := range task.Assignees {
			fmt.Fprintf(w, "  - %s <%s>\n", a.Name, a.Email)
		}
	}
	if task.Description != "" {
		fmt.Fprintf(w, "\n%s\n", task.Description)
	}
	return nil
}

// StatisticsView renders a team's task counts.
type StatisticsView struct {
	TeamName string
	Stats    api.TaskStatistics
}

func (v StatisticsView) RenderText(w io.Writer, noColor bool) error {
	s := styler{noColor: noColor}
	if v.TeamName != "" {
		fmt.Fprintln(w, s.render(headerStyle, v.TeamName))
	}
	fmt.Fprintf(w, "Total:       %d\n", v.Stats.Total)
	fmt.Fprintf(w, "Pending:     %d\n", v.Stats.Pending)
	fmt.Fprintf(w, "In progress: %d\n", v.Stats.InProgress)
	fmt.Fprintf(w, "Completed:   %d\n", v.Stats.Completed)
	if v.Stats.Overdue > 0 {
		fmt.Fprintf(w, "Overdue:     %s\n", s.render(overdueStyle, fmt.Sprint(v.Stats.Overdue)))
	}
	return nil
}

// InviteList renders invitations as a table.
type InviteList struct {
	Invites []api.Invite
}

func (v InviteList) RenderText(w io.Writer, noColor bool) error {
	if len(v.Invites) == 0 {
		_, err := fmt.Fprintln(w, "No invitations.")
		return err
	}
	s := styler{noColor: noColor}
	tab := newTab(w)
	fmt.Fprintln(tab, s.render(headerStyle, "ID\tTEAM\tINVITEE\tROLE\tSTATUS\tEXPIRES"))
	for _, invite := range v.Invites {
		team := invite.TeamID
		if invite.Team != nil {
			team = invite.Team.Name
		}
		expires := "-"
		if invite.ExpiresAt != "" {
			expires = FormatDate(invite.ExpiresAt)
		}
		fmt.Fprintf(tab, "%s\t%s\t%s\t%s\t%s\t%s\n",
			invite.ID, team, invite.InviteeEmail, invite.Role, invite.Status, expires)
	}
	return tab.Flush()
}

// SessionView renders the current authentication state.
type SessionView struct {
	User        *api.User
	BaseURL     string
	TokenExpiry time.Time
	Now         time.Time
}

func (v SessionView) RenderText(w io.Writer, noColor bool) error {
	s := styler{noColor: noColor}
	if v.User == nil {
		fmt.Fprintln(w, "Not logged in.")
		fmt.Fprintf(w, "Server: %s\n", v.BaseURL)
		return nil
	}
	fmt.Fprintf(w, "Logged in as %s <%s>\n", s.render(headerStyle, v.User.Name), v.User.Email)
	fmt.Fprintf(w, "Server: %s\n", v.BaseURL)
	if !v.TokenExpiry.IsZero() {
		now := v.Now
		if now.IsZero() {
			now = time.Now()
		}
		label := "Token expires: " + v.TokenExpiry.Format("Jan 02, 2006 3:04 PM")
		if now.After(v.TokenExpiry) {
			label = s.render(overdueStyle, "Token expired "+v.TokenExpiry.Format("Jan 02, 2006 3:04 PM"))
		}
		fmt.Fprintln(w, label)
	}
	return nil
}

// Dashboard renders the overview: teams, open tasks, pending invitations.
type Dashboard struct {
	Teams   []api.Team
	Tasks   []api.Task
	Invites []api.Invite
	Now     time.Time
}

func (v Dashboard) RenderText(w io.Writer, noColor bool) error {
	s := styler{noColor: noColor}

	fmt.Fprintln(w, s.render(headerStyle, Pluralize(len(v.Teams), "team", "")))
	for _, team := range v.Teams {
		fmt.Fprintf(w, "  %s (%s)\n", team.Name, Pluralize(team.TasksCount, "task", ""))
	}

	open := 0
	for _, task := range v.Tasks {
		if task.Status != api.TaskStatusCompleted {
			open++
		}
	}
	fmt.Fprintf(w, "\n%s, %d open\n", s.render(headerStyle, Pluralize(len(v.Tasks), "task assigned", "tasks assigned")), open)

	if len(v.Invites) > 0 {
		fmt.Fprintf(w, "\n%s\n", s.render(headerStyle, Pluralize(len(v.Invites), "pending invitation", "")))
		for _, invite := range v.Invites {
			team := invite.TeamID
			if invite.Team != nil {
				team = invite.Team.Name
			}
			fmt.Fprintf(w, "  %s (accept with: taskzilla invites accept %s)\n", team, invite.Token)
		}
	}
	return nil
}
