package infra

import (
	"fmt"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer builds an empty enforcer from model.conf. Policy rows are
// loaded from the database by the rbac service, never from a policy file.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcer(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load rbac model %s: %w", modelPath, err)
	}
	return e, nil
}
