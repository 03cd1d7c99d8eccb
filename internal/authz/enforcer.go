package authz

import "github.com/casbin/casbin/v2"

// NewEnforcer loads the static RBAC model and policy. Roles are carried in
// the operator's token; policies are not tenant-scoped because the store
// serves a single organization.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
