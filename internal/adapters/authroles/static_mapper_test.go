package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/sikayet/console-api/internal/domain/auth"
)

func TestStaticRoleMapper_IsAuthorized(t *testing.T) {
	m := StaticRoleMapper{}

	tests := []struct {
		name string
		role domainauth.Role
		want bool
	}{
		{"admin", domainauth.RoleAdmin, true},
		{"moderator", domainauth.RoleModerator, true},
		{"end user", domainauth.RoleUser, false},
		{"empty claim", domainauth.Role(""), false},
		{"unknown claim", domainauth.Role("SUPERVISOR"), false},
		{"lower case is not normalized here", domainauth.Role("admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsAuthorized(tt.role))
		})
	}
}

func TestStaticRoleMapper_Map(t *testing.T) {
	m := StaticRoleMapper{AdminGroup: "console-admins", ModeratorGroup: "console-moderators"}

	tests := []struct {
		name   string
		groups []string
		want   domainauth.Role
	}{
		{"admin group", []string{"console-admins"}, domainauth.RoleAdmin},
		{"moderator group", []string{"console-moderators"}, domainauth.RoleModerator},
		{"admin wins over moderator", []string{"console-moderators", "console-admins"}, domainauth.RoleAdmin},
		{"unrelated groups", []string{"engineering", "billing"}, domainauth.RoleUser},
		{"no groups", nil, domainauth.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Map(tt.groups))
		})
	}
}

func TestStaticRoleMapper_Map_EmptyConfigMatchesNothing(t *testing.T) {
	m := StaticRoleMapper{}

	assert.Equal(t, domainauth.RoleUser, m.Map([]string{"", "console-admins"}))
}
