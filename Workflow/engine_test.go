package Workflow

import (
	"testing"

	"Eventy/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() RequestInput {
	return RequestInput{
		ClientName:   "Acme Corp",
		EventType:    "Conference",
		EventDetails: "Annual partner conference, 200 attendees",
		ClientBudget: 5000,
	}
}

func TestNewRequest_OfficerAssignsSeniorOfficer(t *testing.T) {
	req, err := NewRequest(RoleCSO, "alice", validInput())
	require.NoError(t, err)

	assert.Equal(t, string(RoleSCSO), req.AssignedTo)
	assert.Equal(t, StatusPending, req.Status)
	assert.Equal(t, "alice", req.CreatedBy)
	assert.False(t, req.ReadyForPlanning)
	assert.Empty(t, req.TasksFor)
}

func TestNewRequest_SeniorOfficerAssignsFinance(t *testing.T) {
	req, err := NewRequest(RoleSCSO, "bob", validInput())
	require.NoError(t, err)
	assert.Equal(t, string(RoleFM), req.AssignedTo)
}

func TestNewRequest_NonOriginatorsRefused(t *testing.T) {
	for _, role := range []Role{RoleFM, RoleAM, RoleSM, RolePM, RoleHR, RoleSMTM, RolePMTM} {
		_, err := NewRequest(role, "eve", validInput())
		assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
	}
}

func TestNewRequest_BudgetBelowMinimum(t *testing.T) {
	in := validInput()
	in.ClientBudget = 999
	_, err := NewRequest(RoleCSO, "alice", in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "ClientBudget")

	in.ClientBudget = 1000
	_, err = NewRequest(RoleCSO, "alice", in)
	assert.NoError(t, err)
}

func TestNewRequest_RequiredFields(t *testing.T) {
	in := validInput()
	in.ClientName = ""
	in.EventDetails = ""
	_, err := NewRequest(RoleCSO, "alice", in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "ClientName")
	assert.Contains(t, verr.Fields, "EventDetails")
}

func TestAdvance_DefaultChain(t *testing.T) {
	req, err := NewRequest(RoleCSO, "alice", validInput())
	require.NoError(t, err)

	chain := []struct {
		actor        Role
		nextAssignee Role
	}{
		{RoleSCSO, RoleFM},
		{RoleFM, RoleAM},
		{RoleAM, RoleSCSO},
		{RoleSCSO, RoleFM}, // loop re-enters at finance
	}
	for _, hop := range chain {
		require.Equal(t, string(hop.actor), req.AssignedTo)
		req, err = Advance(req, hop.actor, ActionSubmit, validInput())
		require.NoError(t, err)
		assert.Equal(t, string(hop.nextAssignee), req.AssignedTo)
	}
}

func TestAdvance_ActorMismatchForbidden(t *testing.T) {
	req, err := NewRequest(RoleCSO, "alice", validInput())
	require.NoError(t, err)
	require.Equal(t, string(RoleSCSO), req.AssignedTo)

	_, err = Advance(req, RoleFM, ActionSubmit, validInput())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdvance_AdminManagerSetsPlanningFlag(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleAM), Status: StatusPending}

	req, err := Advance(req, RoleAM, ActionSubmit, validInput())
	require.NoError(t, err)
	assert.True(t, req.ReadyForPlanning)
	assert.Equal(t, string(RoleSCSO), req.AssignedTo)
}

func TestAdvance_PlanningFlagSetEvenWithExplicitStatus(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleAM), Status: StatusPending}

	in := validInput()
	in.Status = "Approved by admin"
	req, err := Advance(req, RoleAM, ActionSubmit, in)
	require.NoError(t, err)
	assert.True(t, req.ReadyForPlanning)
	assert.Equal(t, "Approved by admin", req.Status)
}

func TestAdvance_PlanningFlagIsMonotonic(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleAM), Status: StatusPending}

	req, err := Advance(req, RoleAM, ActionSubmit, validInput())
	require.NoError(t, err)
	require.True(t, req.ReadyForPlanning)

	// keep looping through the chain; the flag must survive every hop
	for _, actor := range []Role{RoleSCSO, RoleFM, RoleAM, RoleSCSO} {
		req, err = Advance(req, actor, ActionSubmit, validInput())
		require.NoError(t, err)
		assert.True(t, req.ReadyForPlanning)
	}
}

func TestAdvance_SendToServices(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleSCSO), ReadyForPlanning: true, Status: StatusPending}

	req, err := Advance(req, RoleSCSO, ActionSendToServices, validInput())
	require.NoError(t, err)
	assert.Equal(t, string(SubteamServices), req.TasksFor)
	assert.Equal(t, string(RoleSM), req.AssignedTo)
}

func TestAdvance_SendToProduction(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleSCSO), ReadyForPlanning: true, Status: StatusPending}

	req, err := Advance(req, RoleSCSO, ActionSendToProduction, validInput())
	require.NoError(t, err)
	assert.Equal(t, string(SubteamProduction), req.TasksFor)
	assert.Equal(t, string(RolePM), req.AssignedTo)
}

func TestAdvance_BranchRequiresPlanningFlag(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleSCSO), Status: StatusPending}

	_, err := Advance(req, RoleSCSO, ActionSendToServices, validInput())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdvance_BranchOnlyForSeniorOfficer(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleFM), ReadyForPlanning: true, Status: StatusPending}

	_, err := Advance(req, RoleFM, ActionSendToProduction, validInput())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdvance_TasksForSetOnce(t *testing.T) {
	req := Models.Request{
		AssignedTo:       string(RoleSCSO),
		ReadyForPlanning: true,
		TasksFor:         string(SubteamServices),
		Status:           StatusPending,
	}

	_, err := Advance(req, RoleSCSO, ActionSendToProduction, validInput())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdvance_ReadyRequestFallsThroughToFinance(t *testing.T) {
	// A senior officer who submits a planning-ready request without choosing
	// a sub-team re-enters the approval cycle at finance.
	req := Models.Request{AssignedTo: string(RoleSCSO), ReadyForPlanning: true, Status: StatusPending}

	req, err := Advance(req, RoleSCSO, ActionSubmit, validInput())
	require.NoError(t, err)
	assert.Equal(t, string(RoleFM), req.AssignedTo)
	assert.Empty(t, req.TasksFor)
	assert.True(t, req.ReadyForPlanning)
}

func TestAdvance_Reject(t *testing.T) {
	req := Models.Request{
		ClientName: "Acme Corp",
		AssignedTo: string(RoleFM),
		Status:     StatusPending,
	}

	req, err := Advance(req, RoleFM, ActionReject, RequestInput{})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, req.Status)
	assert.Equal(t, string(RoleSCSO), req.AssignedTo)
	// rejection does not touch the descriptive fields
	assert.Equal(t, "Acme Corp", req.ClientName)
}

func TestAdvance_RejectIdempotent(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleFM), Status: StatusPending}

	req, err := Advance(req, RoleFM, ActionReject, RequestInput{})
	require.NoError(t, err)

	// the rejected request sits with scso, who may reject again to the same effect
	again, err := Advance(req, RoleSCSO, ActionReject, RequestInput{})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, again.Status)
	assert.Equal(t, string(RoleSCSO), again.AssignedTo)
}

func TestAdvance_RejectAfterSubteamForbidden(t *testing.T) {
	req := Models.Request{
		AssignedTo:       string(RoleSM),
		ReadyForPlanning: true,
		TasksFor:         string(SubteamServices),
		Status:           StatusPending,
	}

	_, err := Advance(req, RoleSM, ActionReject, validInput())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdvance_SubteamManagerEditKeepsAssignment(t *testing.T) {
	req := Models.Request{
		AssignedTo:       string(RoleSM),
		ReadyForPlanning: true,
		TasksFor:         string(SubteamServices),
		Status:           StatusPending,
	}

	req, err := Advance(req, RoleSM, ActionSubmit, validInput())
	require.NoError(t, err)
	assert.Equal(t, string(RoleSM), req.AssignedTo)
}

func TestAdvance_ValidationFailureReturnsNothing(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleSCSO), Status: StatusPending}

	in := validInput()
	in.ClientBudget = 500
	out, err := Advance(req, RoleSCSO, ActionSubmit, in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, Models.Request{}, out)
}

func TestCanViewRequest(t *testing.T) {
	req := Models.Request{
		CreatedBy:  "alice",
		AssignedTo: string(RoleFM),
	}

	// creator and current assignee
	assert.True(t, CanViewRequest(req, RoleCSO, "alice"))
	assert.True(t, CanViewRequest(req, RoleFM, "frank"))

	// chain reviewers see everything the chain can hand them
	assert.True(t, CanViewRequest(req, RoleSCSO, "sam"))
	assert.True(t, CanViewRequest(req, RoleAM, "ann"))

	// everyone else is scoped out
	assert.False(t, CanViewRequest(req, RoleCSO, "carol"))
	assert.False(t, CanViewRequest(req, RoleHR, "harry"))
	assert.False(t, CanViewRequest(req, RoleSM, "steve"))

	// once routed, the owning sub-team sees it and the other does not
	req.TasksFor = string(SubteamServices)
	req.AssignedTo = string(RoleSM)
	assert.True(t, CanViewRequest(req, RoleSM, "steve"))
	assert.True(t, CanViewRequest(req, RoleSMTM, "tina"))
	assert.False(t, CanViewRequest(req, RolePM, "paula"))
	assert.False(t, CanViewRequest(req, RolePMTM, "pete"))
}

func TestParseAction(t *testing.T) {
	action, err := ParseAction("")
	require.NoError(t, err)
	assert.Equal(t, ActionSubmit, action)

	action, err = ParseAction("send_to_services")
	require.NoError(t, err)
	assert.Equal(t, ActionSendToServices, action)

	_, err = ParseAction("approve-ish")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
