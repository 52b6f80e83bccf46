package Workflow

import "fmt"

// Role identifies an actor's organizational function. The set is closed:
// anything outside roleNames is rejected at the boundary by ParseRole.
type Role string

const (
	RoleCSO  Role = "cso"  // Customer Service Officer
	RoleSCSO Role = "scso" // Senior Customer Service Officer
	RoleFM   Role = "fm"   // Financial Manager
	RoleAM   Role = "am"   // Administrative Manager
	RoleSM   Role = "sm"   // Services Manager
	RolePM   Role = "pm"   // Production Manager
	RoleHR   Role = "hr"   // Human Resources Manager
	RoleSMTM Role = "smtm" // Services Team Member
	RolePMTM Role = "pmtm" // Production Team Member
)

// Subteam is the downstream execution track tasks belong to.
type Subteam string

const (
	SubteamServices   Subteam = "services"
	SubteamProduction Subteam = "production"
)

var roleNames = map[Role]string{
	RoleCSO:  "Customer Service Officer",
	RoleSCSO: "Senior Customer Service Officer",
	RoleFM:   "Financial Manager",
	RoleAM:   "Administrative Manager",
	RoleSM:   "Services Manager",
	RolePM:   "Production Manager",
	RoleHR:   "Human Resources Manager",
	RoleSMTM: "Services Team Member",
	RolePMTM: "Production Team Member",
}

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) DisplayName() string {
	return roleNames[r]
}

// CanOriginate reports whether this role may create new client requests.
func (r Role) CanOriginate() bool {
	return r == RoleCSO || r == RoleSCSO
}

// IsReviewer reports whether this role sits on the approval chain and may
// reject a request assigned to it.
func (r Role) IsReviewer() bool {
	return r == RoleSCSO || r == RoleFM || r == RoleAM
}

// IsSubteamManager reports whether this role runs one of the execution
// sub-teams and may plan tasks and raise resource/budget requests.
func (r Role) IsSubteamManager() bool {
	return r == RoleSM || r == RolePM
}

// SubteamOf maps a role to the sub-team whose tasks it may see. Roles outside
// the services/production tracks map to the empty Subteam.
func (r Role) SubteamOf() Subteam {
	switch r {
	case RoleSM, RoleSMTM:
		return SubteamServices
	case RolePM, RolePMTM:
		return SubteamProduction
	}
	return ""
}
