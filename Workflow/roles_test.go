package Workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"cso", "scso", "fm", "am", "sm", "pm", "hr", "smtm", "pmtm"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, Role(raw), role)
		assert.NotEmpty(t, role.DisplayName())
	}

	for _, raw := range []string{"", "admin", "CSO", "scso "} {
		_, err := ParseRole(raw)
		assert.ErrorIs(t, err, ErrInvalidRole, "raw %q", raw)
	}
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleCSO.CanOriginate())
	assert.True(t, RoleSCSO.CanOriginate())
	assert.False(t, RoleFM.CanOriginate())
	assert.False(t, RoleSM.CanOriginate())

	assert.True(t, RoleSCSO.IsReviewer())
	assert.True(t, RoleFM.IsReviewer())
	assert.True(t, RoleAM.IsReviewer())
	assert.False(t, RoleCSO.IsReviewer())
	assert.False(t, RolePM.IsReviewer())
}

func TestSubteamMapping(t *testing.T) {
	assert.Equal(t, SubteamServices, RoleSM.SubteamOf())
	assert.Equal(t, SubteamServices, RoleSMTM.SubteamOf())
	assert.Equal(t, SubteamProduction, RolePM.SubteamOf())
	assert.Equal(t, SubteamProduction, RolePMTM.SubteamOf())

	for _, role := range []Role{RoleCSO, RoleSCSO, RoleFM, RoleAM, RoleHR} {
		assert.Empty(t, role.SubteamOf(), "role %s", role)
	}
}
