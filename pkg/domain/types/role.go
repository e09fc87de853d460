package types

import "github.com/m-mizutani/goerr/v2"

// Role is the author of a conversation message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Validate checks if the Role is one of the known values
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return nil
	default:
		return goerr.New("invalid message role", goerr.V("role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
