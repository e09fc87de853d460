package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/startupsole/solechat/pkg/domain/types"
)

func TestRoleValidate(t *testing.T) {
	for _, role := range []types.Role{types.RoleUser, types.RoleAssistant, types.RoleSystem} {
		gt.NoError(t, role.Validate())
	}

	gt.Error(t, types.Role("moderator").Validate())
	gt.Error(t, types.Role("").Validate())
}
