package Workflow

import (
	"fmt"

	"Eventy/Models"
)

// Status labels stored on a request. The status column stays free-form (the
// reviewing roles may write their own labels into it), but the lifecycle
// endpoints are fixed.
const (
	StatusPending  = "Pending"
	StatusRejected = "Rejected"
)

// RequestInput holds the editable fields of a client request.
type RequestInput struct {
	ClientName   string `json:"client_name" validate:"required"`
	EventType    string `json:"event_type" validate:"required"`
	EventDetails string `json:"event_details" validate:"required"`
	ClientBudget int    `json:"client_budget" validate:"required,min=1000"`
	Feedback     string `json:"feedback"`
	Status       string `json:"status"`
}

// nextAssignee is the default assignment chain. Roles without an entry
// (sm, pm once a request reaches a sub-team) keep the current assignment.
var nextAssignee = map[Role]Role{
	RoleCSO:  RoleSCSO,
	RoleSCSO: RoleFM,
	RoleFM:   RoleAM,
	RoleAM:   RoleSCSO,
}

// NewRequest builds the initial record for a client request. Only customer
// service officers may originate; the request starts pending with the first
// hop of the chain already assigned.
func NewRequest(actor Role, createdBy string, in RequestInput) (Models.Request, error) {
	if !actor.Valid() {
		return Models.Request{}, fmt.Errorf("%w: %q", ErrInvalidRole, actor)
	}
	if !actor.CanOriginate() {
		return Models.Request{}, fmt.Errorf("%w: %s cannot create requests", ErrForbidden, actor)
	}
	if err := Validate(in); err != nil {
		return Models.Request{}, err
	}

	status := in.Status
	if status == "" {
		status = StatusPending
	}
	return Models.Request{
		ClientName:   in.ClientName,
		EventType:    in.EventType,
		EventDetails: in.EventDetails,
		ClientBudget: in.ClientBudget,
		Feedback:     in.Feedback,
		Status:       status,
		CreatedBy:    createdBy,
		AssignedTo:   string(nextAssignee[actor]),
	}, nil
}

// CanViewRequest reports whether the actor may read a request's detail.
// Creators and the current assignee always may; the reviewing chain roles see
// every request the chain can hand them; sub-team roles see requests routed
// to their own track.
func CanViewRequest(req Models.Request, actor Role, username string) bool {
	if req.CreatedBy == username || req.AssignedTo == string(actor) {
		return true
	}
	if actor.IsReviewer() {
		return true
	}
	if subteam := actor.SubteamOf(); subteam != "" && req.TasksFor == string(subteam) {
		return true
	}
	return false
}

// Advance applies one approval hop to a request and returns the next record
// state. It never mutates its input; on any error the zero Request is
// returned and nothing should be persisted.
//
// The transition rules, in order:
//   - the actor must be the request's current assignee;
//   - reject returns the request to the senior officer and leaves the
//     descriptive fields untouched;
//   - a committed edit always follows the default chain
//     cso→scso→fm→am→scso, except that a senior officer holding a
//     planning-ready request may branch it to a sub-team instead;
//   - the administrative manager hop sets ready_for_planning, which is
//     never cleared afterwards.
func Advance(req Models.Request, actor Role, action Action, in RequestInput) (Models.Request, error) {
	if !actor.Valid() {
		return Models.Request{}, fmt.Errorf("%w: %q", ErrInvalidRole, actor)
	}
	if string(actor) != req.AssignedTo {
		return Models.Request{}, fmt.Errorf("%w: request is assigned to %q", ErrForbidden, req.AssignedTo)
	}

	switch action {
	case ActionReject:
		if !actor.IsReviewer() {
			return Models.Request{}, fmt.Errorf("%w: %s cannot reject", ErrForbidden, actor)
		}
		req.Status = StatusRejected
		req.AssignedTo = string(RoleSCSO)
		return req, nil
	case ActionSendToServices, ActionSendToProduction:
		if actor != RoleSCSO {
			return Models.Request{}, fmt.Errorf("%w: only the senior officer routes to a sub-team", ErrForbidden)
		}
		if !req.ReadyForPlanning {
			return Models.Request{}, fmt.Errorf("%w: request is not ready for planning", ErrForbidden)
		}
		if req.TasksFor != "" {
			return Models.Request{}, fmt.Errorf("%w: request is already routed to %q", ErrForbidden, req.TasksFor)
		}
	case ActionSubmit:
	default:
		return Models.Request{}, &ValidationError{Fields: map[string]string{
			"action": fmt.Sprintf("unknown action %q", action),
		}}
	}

	if err := Validate(in); err != nil {
		return Models.Request{}, err
	}

	req.ClientName = in.ClientName
	req.EventType = in.EventType
	req.EventDetails = in.EventDetails
	req.ClientBudget = in.ClientBudget
	req.Feedback = in.Feedback
	if in.Status != "" {
		req.Status = in.Status
	}

	// The planning flag is monotonic: the am hop sets it regardless of the
	// submitted status and no transition resets it.
	if actor == RoleAM {
		req.ReadyForPlanning = true
	}

	switch action {
	case ActionSendToServices:
		req.TasksFor = string(SubteamServices)
		req.AssignedTo = string(RoleSM)
	case ActionSendToProduction:
		req.TasksFor = string(SubteamProduction)
		req.AssignedTo = string(RolePM)
	default:
		if next, ok := nextAssignee[actor]; ok {
			req.AssignedTo = string(next)
		}
	}
	return req, nil
}
