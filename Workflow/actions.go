package Workflow

// Action is the explicit decision an actor submits alongside a request edit.
// The original UI distinguished these by which submit button was pressed;
// the API takes them as a single enum field instead.
type Action string

const (
	// ActionSubmit commits the edit and hands the request to the next role
	// on the default chain.
	ActionSubmit Action = "submit"
	// ActionReject closes the request and returns it to the senior officer.
	ActionReject Action = "reject"
	// ActionSendToServices routes a planning-ready request to the services team.
	ActionSendToServices Action = "send_to_services"
	// ActionSendToProduction routes a planning-ready request to the production team.
	ActionSendToProduction Action = "send_to_production"
)

// ParseAction validates a raw action string. The empty string means a plain
// submit so that callers editing a request don't have to spell it out.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case "":
		return ActionSubmit, nil
	case ActionSubmit, ActionReject, ActionSendToServices, ActionSendToProduction:
		return Action(s), nil
	}
	return "", &ValidationError{Fields: map[string]string{
		"action": "must be one of submit, reject, send_to_services, send_to_production",
	}}
}
