// Package authroles implements the console's role gate.
//
// The gate is a UX measure, not a security boundary: it keeps unauthorized
// users out of the console screens, but the platform API must independently
// reject unauthorized roles on every privileged endpoint.
package authroles

import (
	domainauth "github.com/sikayet/console-api/internal/domain/auth"
)

// StaticRoleMapper gates console access on the role claim and maps SSO
// groups onto platform roles by simple string membership.
type StaticRoleMapper struct {
	// AdminGroup and ModeratorGroup are the IdP group names used in SSO
	// mode. Empty values disable the corresponding mapping.
	AdminGroup     string
	ModeratorGroup string
}

// IsAuthorized reports whether a role may use the admin console. Exactly the
// administrator and moderator roles are accepted; everything else, including
// empty or malformed claims, is rejected.
func (m StaticRoleMapper) IsAuthorized(role domainauth.Role) bool {
	switch role {
	case domainauth.RoleAdmin, domainauth.RoleModerator:
		return true
	default:
		return false
	}
}

// Map resolves IdP group membership to a platform role. Admin membership
// wins over moderator; unmatched users map to the end-user role, which the
// gate then rejects.
func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.ModeratorGroup != "" && g == m.ModeratorGroup {
			return domainauth.RoleModerator
		}
	}
	return domainauth.RoleUser
}
