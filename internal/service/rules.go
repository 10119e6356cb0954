package service

import (
	"strings"

	"github.com/taskzilla/taskzilla-cli/internal/query"
)

// Kind names one write operation for the invalidation rules.
type Kind string

const (
	KindTeamCreate Kind = "team.create"
	KindTeamUpdate Kind = "team.update"
	KindTeamDelete Kind = "team.delete"

	KindTaskCreate   Kind = "task.create"
	KindTaskUpdate   Kind = "task.update"
	KindTaskStatus   Kind = "task.status"
	KindTaskDelete   Kind = "task.delete"
	KindTaskAssign   Kind = "task.assign"
	KindTaskUnassign Kind = "task.unassign"

	KindInviteSend    Kind = "invite.send"
	KindInviteAccept  Kind = "invite.accept"
	KindInviteDecline Kind = "invite.decline"
	KindInviteRevoke  Kind = "invite.revoke"
)

// Placeholder parts, filled in per mutation.
const (
	teamParam = "{team}"
	taskParam = "{task}"
)

// Rules maps each mutation kind to the query-key patterns it invalidates.
// Task writes touch the caller's own list, the affected team's list and
// statistics, and the task record itself; they leave other teams' queries
// alone. Accepting an invitation also refreshes the team list, since
// membership changed.
var Rules = map[Kind][]query.Key{
	KindTeamCreate: {query.NewKey("teams")},
	KindTeamUpdate: {query.NewKey("teams")},
	KindTeamDelete: {query.NewKey("teams")},

	KindTaskCreate:   taskPatterns(),
	KindTaskUpdate:   taskPatterns(),
	KindTaskStatus:   taskPatterns(),
	KindTaskDelete:   taskPatterns(),
	KindTaskAssign:   taskPatterns(),
	KindTaskUnassign: taskPatterns(),

	KindInviteSend:    {query.NewKey("invites")},
	KindInviteAccept:  {query.NewKey("invites"), query.NewKey("teams")},
	KindInviteDecline: {query.NewKey("invites")},
	KindInviteRevoke:  {query.NewKey("invites")},
}

func taskPatterns() []query.Key {
	return []query.Key{
		query.NewKey("tasks", "my"),
		query.NewKey("tasks", "team", teamParam),
		query.NewKey("tasks", "statistics", teamParam),
		query.NewKey("tasks", "item", taskParam),
	}
}

// expand substitutes placeholder parts with the mutation's parameters. A
// pattern is truncated at a placeholder with no value, which widens it to a
// prefix: an update whose team is unknown invalidates every team's list
// rather than missing one.
func expand(patterns []query.Key, params map[string]string) []query.Key {
	out := make([]query.Key, 0, len(patterns))
	for _, pattern := range patterns {
		parts := make([]string, 0, len(pattern.Parts))
		for _, part := range pattern.Parts {
			if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
				value := params[strings.Trim(part, "{}")]
				if value == "" {
					break
				}
				parts = append(parts, value)
				continue
			}
			parts = append(parts, part)
		}
		out = append(out, query.Key{Resource: pattern.Resource, Parts: parts})
	}
	return out
}
