package types

import (
	"Agora/pkg/permission"

	"github.com/google/uuid"
)

// Actor 当前操作人
type Actor struct {
	ID   uuid.UUID
	Role permission.Role
}

func (a Actor) Can(action permission.Action) bool {
	return permission.Can(a.Role, action)
}
