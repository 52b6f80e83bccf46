package Workflow

import (
	"testing"

	"Eventy/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicesRequest() Models.Request {
	return Models.Request{
		AssignedTo:       string(RoleSM),
		ReadyForPlanning: true,
		TasksFor:         string(SubteamServices),
		Status:           StatusPending,
	}
}

func TestNewTask_SubteamDerivedFromActor(t *testing.T) {
	req := servicesRequest()
	req.ID = 7

	task, err := NewTask(req, RoleSM, TaskInput{
		TaskName:    "Book venue",
		TaskDetails: "Reserve the main hall for the conference dates",
	})
	require.NoError(t, err)

	assert.Equal(t, string(SubteamServices), task.Subteam)
	assert.Equal(t, string(RoleSM), task.CreatedBy)
	assert.Equal(t, uint(7), task.RequestID)
}

func TestNewTask_WrongSubteamForbidden(t *testing.T) {
	req := servicesRequest()
	req.TasksFor = string(SubteamProduction)

	_, err := NewTask(req, RoleSM, TaskInput{TaskName: "x", TaskDetails: "y"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestNewTask_OnlyManagersPlan(t *testing.T) {
	req := servicesRequest()

	for _, role := range []Role{RoleSMTM, RolePMTM, RoleSCSO, RoleHR} {
		_, err := NewTask(req, role, TaskInput{TaskName: "x", TaskDetails: "y"})
		assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
	}
}

func TestNewTask_UnroutedRequestForbidden(t *testing.T) {
	req := Models.Request{AssignedTo: string(RoleSCSO), Status: StatusPending}

	_, err := NewTask(req, RoleSM, TaskInput{TaskName: "x", TaskDetails: "y"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestNewTask_RequiredFields(t *testing.T) {
	_, err := NewTask(servicesRequest(), RoleSM, TaskInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "TaskName")
	assert.Contains(t, verr.Fields, "TaskDetails")
}

func TestTaskSubteamFor(t *testing.T) {
	for role, want := range map[Role]Subteam{
		RoleSM:   SubteamServices,
		RoleSMTM: SubteamServices,
		RolePM:   SubteamProduction,
		RolePMTM: SubteamProduction,
	} {
		subteam, err := TaskSubteamFor(role)
		require.NoError(t, err)
		assert.Equal(t, want, subteam)
	}

	for _, role := range []Role{RoleCSO, RoleSCSO, RoleFM, RoleAM, RoleHR} {
		_, err := TaskSubteamFor(role)
		assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
	}
}
