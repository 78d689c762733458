package usecase

import (
	"context"

	"user_backend/internal/feature/users/domain/entity"
)

// RoleReconciler maps a set of requested role names to persisted role
// records, creating any that do not exist yet (logical upsert-by-name).
type RoleReconciler struct {
	roles RoleRepository
}

// NewRoleReconciler creates a new RoleReconciler backed by the given repository.
func NewRoleReconciler(roles RoleRepository) *RoleReconciler {
	return &RoleReconciler{roles: roles}
}

// Reconcile resolves the requested names against the role store and returns
// the union of pre-existing and newly created records. Names are treated as
// a set: duplicates in the input collapse to one record. An empty request
// returns an empty set without touching the store.
func (r *RoleReconciler) Reconcile(ctx context.Context, names []string) ([]entity.Role, error) {
	if len(names) == 0 {
		return []entity.Role{}, nil
	}

	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}

	existing, err := r.roles.FindByNames(ctx, unique)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{}, len(existing))
	for _, role := range existing {
		found[role.Name] = struct{}{}
	}

	resolved := existing
	for _, name := range unique {
		if _, ok := found[name]; ok {
			continue
		}
		role, err := r.roles.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *role)
	}

	return resolved, nil
}
