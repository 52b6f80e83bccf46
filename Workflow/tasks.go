package Workflow

import (
	"fmt"

	"Eventy/Models"
)

// TaskInput holds the fields a sub-team manager supplies for a new task.
// The sub-team itself is never user-supplied: it is derived from the acting
// role so a services manager cannot file tasks under production.
type TaskInput struct {
	TaskName    string `json:"task_name" validate:"required"`
	TaskDetails string `json:"task_details" validate:"required"`
}

// NewTask builds a task against a request that has been routed to the actor's
// sub-team. Tasks are immutable once stored.
func NewTask(req Models.Request, actor Role, in TaskInput) (Models.Task, error) {
	if !actor.Valid() {
		return Models.Task{}, fmt.Errorf("%w: %q", ErrInvalidRole, actor)
	}
	if !actor.IsSubteamManager() {
		return Models.Task{}, fmt.Errorf("%w: %s cannot plan tasks", ErrForbidden, actor)
	}
	subteam := actor.SubteamOf()
	if req.TasksFor != string(subteam) {
		return Models.Task{}, fmt.Errorf("%w: request is routed to %q, not %q", ErrForbidden, req.TasksFor, subteam)
	}
	if err := Validate(in); err != nil {
		return Models.Task{}, err
	}
	return Models.Task{
		TaskName:    in.TaskName,
		TaskDetails: in.TaskDetails,
		Subteam:     string(subteam),
		CreatedBy:   string(actor),
		RequestID:   req.ID,
	}, nil
}

// TaskSubteamFor resolves the sub-team whose tasks a role may list. Managers
// and team members see their own track; everyone else is refused.
func TaskSubteamFor(role Role) (Subteam, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	subteam := role.SubteamOf()
	if subteam == "" {
		return "", fmt.Errorf("%w: %s has no task visibility", ErrForbidden, role)
	}
	return subteam, nil
}
