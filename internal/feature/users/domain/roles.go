// Package domain defines domain-level vocabulary for the users feature.
package domain

// Recognized role names. Requests are validated against this closed set at
// the transport boundary; the store itself keeps roles as open-ended name
// strings, so the two concerns stay decoupled.
const (
	RoleOperator   = "OPERATOR"
	RoleDeveloper  = "DEVELOPER"
	RoleReporter   = "REPORTER"
	RoleOwner      = "OWNER"
	RoleMaintainer = "MAINTAINER"
)

// KnownRoleNames returns the full recognized role vocabulary.
// Used to seed the roles table at startup.
func KnownRoleNames() []string {
	return []string{
		RoleOperator,
		RoleDeveloper,
		RoleReporter,
		RoleOwner,
		RoleMaintainer,
	}
}
