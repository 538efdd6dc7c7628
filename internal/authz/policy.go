// Package authz holds the fixed role policy for generation modules and the
// admin analytics view.
package authz

import "marketai/internal/model"

// Resource is anything a role policy can be attached to.
type Resource string

const (
	ResourceCampaign  = Resource(model.ModuleCampaign)
	ResourcePitch     = Resource(model.ModulePitch)
	ResourceLead      = Resource(model.ModuleLead)
	ResourceAnalytics Resource = "analytics"
)

var policy = map[Resource]model.RoleSet{
	ResourceCampaign:  model.NewRoleSet(model.RoleAdmin, model.RoleMarketer),
	ResourcePitch:     model.NewRoleSet(model.RoleAdmin, model.RoleSales),
	ResourceLead:      model.NewRoleSet(model.RoleAdmin, model.RoleSales),
	ResourceAnalytics: model.NewRoleSet(model.RoleAdmin),
}

// IsAllowed reports whether user exists and holds one of the required roles.
func IsAllowed(user *model.User, required model.RoleSet) bool {
	if user == nil {
		return false
	}
	return required.Contains(user.Role)
}

// RolesFor returns the roles allowed to use r. Unknown resources allow nobody.
func RolesFor(r Resource) model.RoleSet {
	if s, ok := policy[r]; ok {
		return s
	}
	return model.RoleSet{}
}

// CanUse reports whether user may use resource r.
func CanUse(user *model.User, r Resource) bool {
	return IsAllowed(user, RolesFor(r))
}

// ForModule maps a generation module to its policy resource.
func ForModule(m model.Module) Resource {
	return Resource(m)
}
